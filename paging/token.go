package paging

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TokenPrefix tags the token encoding scheme: base64 of the JSON state.
const TokenPrefix = "b:"

var tokenEncoding = base64.StdEncoding.Strict()

// wireState is the decoded form of a token payload. Pointers let missing
// and null fields be told apart from zero values.
type wireState struct {
	TotalCount      *int64 `json:"total_count" validate:"required,gte=0"`
	PageSize        *int64 `json:"page_size" validate:"required,gt=0"`
	Remaining       *int64 `json:"remaining" validate:"required,gte=0"`
	PageNum         *int64 `json:"page_num" validate:"required,gte=0"`
	Offset          *int64 `json:"offset" validate:"required,gte=0"`
	ElementsFetched *int64 `json:"elements_fetched" validate:"required,gte=0"`
}

func (w *wireState) state() State {
	return State{
		TotalCount:      *w.TotalCount,
		PageSize:        *w.PageSize,
		Remaining:       *w.Remaining,
		PageNum:         *w.PageNum,
		Offset:          *w.Offset,
		ElementsFetched: *w.ElementsFetched,
	}
}

// EncodeToken serializes s into an opaque page token.
func EncodeToken(s State) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("%w: cannot encode state: %v", ErrInvalidArgument, err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal page state: %w", err)
	}
	return TokenPrefix + tokenEncoding.EncodeToString(b), nil
}

// DecodeToken parses a token produced by EncodeToken. Every failure wraps
// ErrInvalidToken; nothing is defaulted or repaired.
func DecodeToken(token string) (State, error) {
	payload, ok := strings.CutPrefix(token, TokenPrefix)
	if !ok {
		return State{}, invalidToken("unrecognized version tag", nil)
	}

	raw, err := tokenEncoding.DecodeString(payload)
	if err != nil {
		return State{}, invalidToken("bad encoding", err)
	}

	if err := checkKeys(raw); err != nil {
		return State{}, invalidToken("bad payload", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var w wireState
	if err := dec.Decode(&w); err != nil {
		return State{}, invalidToken("bad payload", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return State{}, invalidToken("trailing data after payload", nil)
	}
	if err := validate.Struct(&w); err != nil {
		return State{}, invalidToken("bad payload", err)
	}

	s := w.state()
	if err := s.Validate(); err != nil {
		return State{}, invalidToken("inconsistent state", err)
	}
	if err := s.checkRange(s.PageSize); err != nil {
		return State{}, invalidToken("inconsistent state", err)
	}
	return s, nil
}

// payloadKeys are the exact member names of a token payload.
var payloadKeys = map[string]bool{
	"total_count":      true,
	"page_size":        true,
	"remaining":        true,
	"page_num":         true,
	"offset":           true,
	"elements_fetched": true,
}

// checkKeys requires raw to be a JSON object whose member names are payload
// keys spelled exactly, each at most once. encoding/json alone would match
// names case-insensitively and let a repeated key overwrite the first.
func checkKeys(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("payload is not a JSON object")
	}

	seen := make(map[string]bool, len(payloadKeys))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		if !payloadKeys[key] {
			return fmt.Errorf("unknown field %q", key)
		}
		if seen[key] {
			return fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = true

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}
