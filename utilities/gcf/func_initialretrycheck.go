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

package gcf

import (
	"context"
	"time"

	"cloud.google.com/go/functions/metadata"
	"github.com/pkg/errors"
)

// InitialRetryCheck tells if the invocation should be processed.
// An error is returned only when the platform should retry: metadata are missing from the event context.
// Invocations are not processed when the cold start failed or when the event is older than retryTimeOutSeconds.
func InitialRetryCheck(ctxEvent context.Context, initFailed bool, retryTimeOutSeconds int64) (ok bool, meta *metadata.Metadata, reason string, err error) {
	meta, err = metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		return false, meta, "redo_on_transient", errors.Wrap(err, "metadata.FromContext") // RETRY
	}
	if initFailed {
		return false, meta, "init_failed", nil // NO RETRY
	}
	// Ignore events that are too old.
	expiration := meta.Timestamp.Add(time.Duration(retryTimeOutSeconds) * time.Second)
	if time.Now().After(expiration) {
		return false, meta, "event_too_old", nil // NO MORE RETRY
	}
	return true, meta, "", nil
}
