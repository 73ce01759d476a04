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
	"encoding/json"
	"fmt"
	"time"

	"github.com/BrunoReboul/movetodrive/utilities/erm"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
)

// notify publishes the report when a notifier is set, best effort
func (r *run) notify(ctx context.Context, outcome Outcome) {
	if r.pipeline.Notifier == nil {
		return
	}
	reportJSON, err := json.Marshal(r.report(outcome, time.Now()))
	if err != nil {
		r.log(logging.Entry{
			Severity:    "WARNING",
			Message:     "notify_failed",
			Stage:       "notify",
			Description: fmt.Sprintf("json.Marshal(report) %v", err),
		})
		return
	}
	if _, err = r.pipeline.Notifier.Publish(ctx, reportJSON); err != nil {
		r.log(logging.Entry{
			Severity:    "WARNING",
			Message:     "notify_failed",
			Stage:       "notify",
			Description: err.Error(),
		})
	}
}

func (r *run) report(outcome Outcome, now time.Time) (report Report) {
	report.TriggeringEventID = r.eventID
	report.Bucket = r.event.Bucket
	report.ObjectName = r.event.Name
	report.Decision = outcome.Decision
	report.UploadStatus = outcome.Upload.Status
	report.DocumentID = outcome.Upload.DocumentID
	if err := outcome.failure(); err != nil {
		report.ErrorKind = erm.KindOf(err)
		report.Error = err.Error()
	}
	if outcome.CleanupErr != nil {
		report.CleanupError = outcome.CleanupErr.Error()
	}
	report.Timestamp = now
	return report
}
