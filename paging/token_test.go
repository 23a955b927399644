package paging

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func encodePayload(json string) string {
	return TokenPrefix + base64.StdEncoding.EncodeToString([]byte(json))
}

func TestTokenRoundTrip(t *testing.T) {
	states := []State{
		NewState(0, 1),
		NewState(100, 10),
		{TotalCount: 100, PageSize: 10, Remaining: 90, PageNum: 1, Offset: 10, ElementsFetched: 10},
		{TotalCount: 100, PageSize: 30, Remaining: 60, PageNum: 2, Offset: 40, ElementsFetched: 40},
		{TotalCount: 1 << 40, PageSize: 1 << 20, Remaining: 1, PageNum: 7, Offset: 1<<40 - 1, ElementsFetched: 1<<40 - 1},
	}

	for _, s := range states {
		token, err := EncodeToken(s)
		if err != nil {
			t.Fatalf("EncodeToken(%+v) error: %v", s, err)
		}
		if !strings.HasPrefix(token, TokenPrefix) {
			t.Errorf("token %q missing prefix %q", token, TokenPrefix)
		}
		got, err := DecodeToken(token)
		if err != nil {
			t.Fatalf("DecodeToken(%q) error: %v", token, err)
		}
		if got != s {
			t.Errorf("round trip = %+v, want %+v", got, s)
		}
	}
}

func TestEncodeTokenWireFormat(t *testing.T) {
	s := State{TotalCount: 100, PageSize: 10, Remaining: 90, PageNum: 1, Offset: 10, ElementsFetched: 10}
	want := encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`)

	got, err := EncodeToken(s)
	if err != nil {
		t.Fatalf("EncodeToken error: %v", err)
	}
	if got != want {
		t.Errorf("EncodeToken = %q, want %q", got, want)
	}
}

func TestDecodeTokenAcceptsSpacedJSON(t *testing.T) {
	// Payload shaped like one written by a JSON encoder with ", " and ": " separators.
	token := encodePayload(`{"total_count": 100, "page_size": 10, "remaining": 90, "page_num": 1, "offset": 10, "elements_fetched": 10}`)

	got, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken error: %v", err)
	}
	want := State{TotalCount: 100, PageSize: 10, Remaining: 90, PageNum: 1, Offset: 10, ElementsFetched: 10}
	if got != want {
		t.Errorf("DecodeToken = %+v, want %+v", got, want)
	}
}

func TestDecodeTokenRejects(t *testing.T) {
	const valid = `{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"missing tag", base64.StdEncoding.EncodeToString([]byte(valid))},
		{"unknown tag", "x:" + base64.StdEncoding.EncodeToString([]byte(valid))},
		{"uppercase tag", "B:" + base64.StdEncoding.EncodeToString([]byte(valid))},
		{"bad base64", "b:!!!not-base64!!!"},
		{"url base64 alphabet", "b:" + base64.URLEncoding.EncodeToString([]byte(`{"total_count":1000000,"page_size":10}>>>`))},
		{"truncated base64", encodePayload(valid)[:20]},
		{"empty payload", "b:"},
		{"not json", encodePayload("hello")},
		{"json array", encodePayload(`[100,10,90,1,10,10]`)},
		{"json null", encodePayload(`null`)},
		{"string field", encodePayload(`{"total_count":"100","page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`)},
		{"float field", encodePayload(`{"total_count":100.5,"page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`)},
		{"null field", encodePayload(`{"total_count":100,"page_size":null,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`)},
		{"missing field", encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":10}`)},
		{"unknown field", encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10,"cursor":"x"}`)},
		{"negative offset", encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":-10,"elements_fetched":10}`)},
		{"negative total", encodePayload(`{"total_count":-1,"page_size":10,"remaining":-1,"page_num":0,"offset":0,"elements_fetched":0}`)},
		{"zero page size", encodePayload(`{"total_count":100,"page_size":0,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`)},
		{"overflow", encodePayload(`{"total_count":99999999999999999999,"page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}`)},
		{"inconsistent remaining", encodePayload(`{"total_count":100,"page_size":10,"remaining":50,"page_num":1,"offset":10,"elements_fetched":10}`)},
		{"trailing data", encodePayload(valid + `{}`)},
		{"truncated json", encodePayload(valid[:len(valid)-1])},
		{"uppercase keys", encodePayload(`{"TOTAL_COUNT":100,"Page_Size":10,"REMAINING":90,"PAGE_NUM":1,"OFFSET":10,"ELEMENTS_FETCHED":10}`)},
		{"one mixed case key", encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"Offset":10,"elements_fetched":10}`)},
		{"duplicate key", encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":10,"offset":10,"elements_fetched":10}`)},
		{"repeated key overriding", encodePayload(`{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":99,"offset":10,"elements_fetched":10}`)},
		{"offset near max int64", encodePayload(`{"total_count":9223372036854775807,"page_size":10,"remaining":9223372036854775807,"page_num":1,"offset":9223372036854775800,"elements_fetched":0}`)},
		{"elements fetched near max int64", encodePayload(`{"total_count":9223372036854775807,"page_size":10,"remaining":7,"page_num":1,"offset":0,"elements_fetched":9223372036854775800}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("DecodeToken(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}

func TestDecodeTokenRejectsTamperedPayload(t *testing.T) {
	token, err := EncodeToken(State{TotalCount: 100, PageSize: 10, Remaining: 90, PageNum: 1, Offset: 10, ElementsFetched: 10})
	if err != nil {
		t.Fatalf("EncodeToken error: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(token, TokenPrefix))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	// Setting the high bit makes every byte invalid in its position, inside
	// keys as well as between tokens.
	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x80
		bad := TokenPrefix + base64.StdEncoding.EncodeToString(tampered)
		if _, err := DecodeToken(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("byte %d flipped: error = %v, want ErrInvalidToken", i, err)
		}
	}

	// Replacing any encoded character with one outside the alphabet must fail too.
	payload := strings.TrimPrefix(token, TokenPrefix)
	for i := range payload {
		bad := TokenPrefix + payload[:i] + "*" + payload[i+1:]
		if _, err := DecodeToken(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("char %d replaced: error = %v, want ErrInvalidToken", i, err)
		}
	}
}

func TestEncodeTokenRejectsInvalidState(t *testing.T) {
	tests := []State{
		{TotalCount: 10, PageSize: 0, Remaining: 10},
		{TotalCount: 10, PageSize: -5, Remaining: 10},
		{TotalCount: -1, PageSize: 5, Remaining: -1},
		{TotalCount: 10, PageSize: 5, Remaining: 3, ElementsFetched: 5},
		{TotalCount: 10, PageSize: 5, Remaining: 5, ElementsFetched: 5, Offset: -1},
	}
	for _, s := range tests {
		if _, err := EncodeToken(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("EncodeToken(%+v) error = %v, want ErrInvalidArgument", s, err)
		}
	}
}
