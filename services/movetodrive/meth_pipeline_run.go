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
	"time"

	"github.com/BrunoReboul/movetodrive/utilities/gcs"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
)

// Run processes one event: filter, stage, transform, authorize, upload, cleanup.
// Once the event passes the filter, cleanup runs whatever happened before.
func (pipeline *Pipeline) Run(ctx context.Context, eventID string, event gcs.ObjectEvent) (outcome Outcome) {
	r := &run{
		pipeline: pipeline,
		eventID:  eventID,
		event:    event,
		start:    time.Now(),
	}
	outcome.Decision = Filter(event)
	if outcome.Decision != Proceed {
		r.log(logging.Entry{
			Severity:    "NOTICE",
			Message:     "cancel",
			Stage:       "filter",
			Description: outcome.Decision.Description(),
		})
		return outcome
	}
	outcome.Upload.Status = NotAttempted
	defer func() {
		outcome.CleanupErr = r.cleanup(ctx, outcome.LocalPath)
		r.notify(ctx, outcome)
	}()

	outcome.LocalPath, outcome.Err = r.stage(ctx)
	if outcome.Err != nil {
		return outcome
	}
	if pipeline.Config.EnableTransform {
		if outcome.Err = r.transform(ctx, outcome.LocalPath); outcome.Err != nil {
			return outcome
		}
	}
	tokenSource, err := r.authorize(ctx)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Upload = r.upload(ctx, tokenSource, outcome.LocalPath)
	return outcome
}
