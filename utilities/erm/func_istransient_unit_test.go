// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"fmt"
	"testing"
)

func TestUnitIsTransient(t *testing.T) {
	var testCases = []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{
			name:          "nil",
			err:           nil,
			wantTransient: false,
		},
		{
			name:          "err403",
			err:           fmt.Errorf("403 forbidden"),
			wantTransient: false,
		},
		{
			name:          "err404",
			err:           fmt.Errorf("googleapi: Error 404: File not found"),
			wantTransient: false,
		},
		{
			name:          "err500",
			err:           fmt.Errorf("googleapi: got HTTP response code 500 with body: Internal Server Error"),
			wantTransient: true,
		},
		{
			name:          "err503",
			err:           fmt.Errorf("503 Service Unavailable"),
			wantTransient: true,
		},
		{
			name:          "err511Wrapped",
			err:           New(UploadError, "drive files create", fmt.Errorf("511 Network Authentication Required")),
			wantTransient: true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsTransient(tc.err); got != tc.wantTransient {
				t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.wantTransient)
			}
		})
	}
}
