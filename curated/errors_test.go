// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/kimballen/gopherchip8/curated"
	"github.com/kimballen/gopherchip8/test"
)

const testPattern = "test error: %v"
const otherPattern = "other error: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, otherPattern))

	// a plain error is never curated
	p := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(otherPattern, e)

	// f wraps e so Is() fails but Has() succeeds
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, otherPattern))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are removed when the chain is
	// unwound into a string
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "detail"))
	test.Equate(t, e.Error(), "error: detail")
}
