package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/fwojciec/docscout"
)

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*?\\]|\\{.*?\\})\\s*```")

// record is the wire shape the model is asked for. Deployed prompts have
// drifted between name/full_name and bio/full_bio, so both are accepted.
type record struct {
	Name      string  `json:"name"`
	FullName  string  `json:"full_name"`
	Bio       string  `json:"bio"`
	FullBio   string  `json:"full_bio"`
	Age       flexInt `json:"age"`
	Hometown  string  `json:"hometown"`
	Education string  `json:"education"`
	PhotoURL  string  `json:"photo_url"`
}

func (r *record) name() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FullName
}

func (r *record) bio() string {
	if r.Bio != "" {
		return r.Bio
	}
	return r.FullBio
}

// flexInt tolerates the model returning an age as a number, a numeric
// string, null, or an empty string.
type flexInt struct {
	Value int
	OK    bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	var n int
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		// Unparseable ages are treated as absent, not as failures.
		return nil
	}
	f.Value = n
	f.OK = true
	return nil
}

// DecodeRecords recovers a list of person records from a raw LLM response.
// Recovery strategies are attempted in order: JSON inside a fenced code
// block, the first balanced top-level array, the first balanced top-level
// object, the whole trimmed response, and finally a repair that strips any
// prose before the first bracket and after the last. A bare object is
// promoted to a single-element list. Returns EINVALID when every strategy
// fails, so the caller can fall back to heuristic extraction.
func DecodeRecords(response string) ([]record, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, docscout.Errorf(docscout.EINVALID, "empty model response")
	}

	for _, candidate := range jsonCandidates(response) {
		if records, ok := decodeCandidate(candidate); ok {
			return records, nil
		}
	}

	return nil, docscout.Errorf(docscout.EINVALID, "model response is not valid JSON")
}

// jsonCandidates returns candidate JSON substrings in recovery order.
func jsonCandidates(response string) []string {
	var candidates []string

	if m := fencedJSONRe.FindStringSubmatch(response); m != nil {
		candidates = append(candidates, m[1])
	}
	if s := balancedSpan(response, '[', ']'); s != "" {
		candidates = append(candidates, s)
	}
	if s := balancedSpan(response, '{', '}'); s != "" {
		candidates = append(candidates, s)
	}
	candidates = append(candidates, response)
	if s := repairSpan(response); s != "" {
		candidates = append(candidates, s)
	}

	return candidates
}

func decodeCandidate(candidate string) ([]record, bool) {
	var list []record
	if err := json.Unmarshal([]byte(candidate), &list); err == nil {
		return list, true
	}

	var single record
	if err := json.Unmarshal([]byte(candidate), &single); err == nil {
		return []record{single}, true
	}

	return nil, false
}

// balancedSpan returns the first balanced open..close span in s, tracking
// nesting and skipping brackets inside JSON strings.
func balancedSpan(s string, open, closing byte) string {
	start := strings.IndexByte(s, open)
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// repairSpan strips any text before the first bracket and after the last
// closing bracket, as a last-resort fix for prose-wrapped output.
func repairSpan(s string) string {
	start := strings.IndexAny(s, "[{")
	end := strings.LastIndexAny(s, "]}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
