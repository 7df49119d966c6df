package compare

import "strings"

// The entire comparison selection lives in one shareable query parameter:
// ?products=id1,id2,... These two functions are the bidirectional mapping
// between that parameter and the ordered ID sequence, kept free of any HTTP
// types so the contract can be tested in isolation.

// DecodeProducts parses the products parameter into an ordered ID list.
// Blanks are dropped, duplicates keep their first position, and the result
// is capped at MaxSlots.
func DecodeProducts(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]bool)
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		if len(ids) == MaxSlots {
			break
		}
	}
	return ids
}

// EncodeProducts serializes an ordered ID list back into the products
// parameter. EncodeProducts(DecodeProducts(s)) is canonical for any s.
func EncodeProducts(ids []string) string {
	return strings.Join(ids, ",")
}
