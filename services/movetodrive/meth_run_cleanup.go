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

package movetodrive

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BrunoReboul/movetodrive/utilities/erm"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
	"github.com/pkg/errors"
)

// cleanup removes the local file first, then deletes the bucket object.
// The object is deleted even when the local removal failed. Failures are logged, never escalated.
func (r *run) cleanup(ctx context.Context, localPath string) error {
	var failures []string
	if localPath != "" {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			failures = append(failures, fmt.Sprintf("remove %s: %v", localPath, err))
		}
	}
	if err := r.pipeline.ObjectStore.Delete(ctx, r.event.Bucket, r.event.Name); err != nil {
		failures = append(failures, err.Error())
	}
	if len(failures) > 0 {
		err := erm.New(erm.CleanupError, "cleanup", errors.New(strings.Join(failures, "; ")))
		r.log(logging.Entry{
			Severity:    "ERROR",
			Message:     "cleanup_failed",
			Stage:       "cleanup",
			Description: err.Error(),
		})
		return err
	}
	r.log(logging.Entry{
		Severity:       "INFO",
		Message:        "cleaned",
		Stage:          "cleanup",
		Description:    "local file removed, bucket object deleted",
		LatencySeconds: time.Since(r.start).Seconds(),
	})
	return nil
}
