package paging

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// State is the traversal progress carried inside a page token.
//
// Field order follows the token payload produced by earlier versions so
// tokens stay byte-compatible.
type State struct {
	TotalCount      int64 `json:"total_count" validate:"gte=0"`
	PageSize        int64 `json:"page_size" validate:"gt=0"`
	Remaining       int64 `json:"remaining" validate:"gte=0"`
	PageNum         int64 `json:"page_num" validate:"gte=0"`
	Offset          int64 `json:"offset" validate:"gte=0"`
	ElementsFetched int64 `json:"elements_fetched" validate:"gte=0"`
}

// NewState returns the state of a traversal that has not fetched anything yet.
func NewState(totalCount, pageSize int64) State {
	return State{
		TotalCount: totalCount,
		PageSize:   pageSize,
		Remaining:  totalCount,
	}
}

// Validate checks field ranges and that Remaining matches TotalCount - ElementsFetched.
func (s State) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.Remaining != s.TotalCount-s.ElementsFetched {
		return fmt.Errorf("remaining %d does not match total_count %d - elements_fetched %d",
			s.Remaining, s.TotalCount, s.ElementsFetched)
	}
	return nil
}

// checkRange reports whether a page of pageSize items can be fetched and
// accounted for from s without overflowing its counters.
func (s State) checkRange(pageSize int64) error {
	if s.Offset > math.MaxInt64-pageSize || s.ElementsFetched > math.MaxInt64-pageSize {
		return fmt.Errorf("offset %d or elements_fetched %d out of range for page size %d",
			s.Offset, s.ElementsFetched, pageSize)
	}
	return nil
}

// Done reports whether a traversal in this state has returned every counted element.
func (s State) Done() bool {
	return s.ElementsFetched >= s.TotalCount
}

// Advance returns the state after a page of fetched items was returned.
// The second result is false when the traversal is complete; the returned
// state is then informational only and must not be encoded.
func (s State) Advance(fetched int64) (State, bool) {
	total := s.ElementsFetched + fetched
	next := State{
		TotalCount:      s.TotalCount,
		PageSize:        s.PageSize,
		Remaining:       s.TotalCount - total,
		PageNum:         s.PageNum + 1,
		Offset:          s.Offset + fetched,
		ElementsFetched: total,
	}
	if total >= s.TotalCount {
		return next, false
	}
	return next, true
}
