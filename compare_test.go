// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"errors"
	"testing"
)

func TestCompareIsolatesFailures(t *testing.T) {
	runs := Compare(scenario, Settings{}, 3, 1.5)
	if len(runs) != len(Labels) {
		t.Fatalf("unexpected number of runs %d", len(runs))
	}
	for i, run := range runs {
		if run.Label != Labels[i] {
			t.Errorf("run %d labelled %q, want %q", i, run.Label, Labels[i])
		}
		if i == 2 {
			if !errors.Is(run.Err, ErrInvalidRelaxationParameter) {
				t.Errorf("%v: unexpected error %v", run.Label, run.Err)
			}
			continue
		}
		if run.Err != nil || !run.Result.Converged {
			t.Errorf("%v: unexpected outcome err=%v converged=%v", run.Label, run.Err, run.Result.Converged)
		}
	}
}

func TestCompareFreshFields(t *testing.T) {
	runs := Compare(scenario, Settings{}, 1.2, 1.2)
	for i := range runs {
		for j := i + 1; j < len(runs); j++ {
			if runs[i].Result.Field == runs[j].Result.Field {
				t.Errorf("%v and %v share a field", runs[i].Label, runs[j].Label)
			}
		}
	}
}
