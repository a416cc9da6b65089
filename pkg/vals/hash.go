package vals

import "src.anyval.sh/pkg/hash"

// Hash returns the 32-bit hash of a value. Values that are Equal have the same
// hash.
func Hash(v Value) uint32 {
	switch v := v.(type) {
	case Text:
		return hash.String(string(v))
	case Number:
		return hash.Float64(float64(v))
	case List:
		return hashSeq(KindList, v.elems...)
	case Set:
		return hashSeq(KindSet, v.Elems()...)
	case Mapping:
		h := hash.DJB(uint32(KindMapping))
		for key, val := range v.All() {
			h = hash.DJBCombine(h, hash.DJB(Hash(key), Hash(val)))
		}
		return h
	}
	return 0
}

func hashSeq(k Kind, vs ...Value) uint32 {
	h := hash.DJB(uint32(k))
	for _, v := range vs {
		h = hash.DJBCombine(h, Hash(v))
	}
	return h
}
