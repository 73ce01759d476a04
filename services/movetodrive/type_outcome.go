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
	"time"

	"github.com/BrunoReboul/movetodrive/utilities/erm"
)

// Outcome of one invocation.
// Err is the failure that aborted the pipeline before upload, upload failures are in Upload.Err.
type Outcome struct {
	Decision   Decision
	LocalPath  string
	Err        error
	Upload     UploadResult
	CleanupErr error
}

// Report is the message published when a notification topic is configured
type Report struct {
	TriggeringEventID string       `json:"triggeringEventId"`
	Bucket            string       `json:"bucket"`
	ObjectName        string       `json:"objectName"`
	Decision          Decision     `json:"decision"`
	UploadStatus      UploadStatus `json:"uploadStatus"`
	DocumentID        string       `json:"documentId,omitempty"`
	ErrorKind         erm.Kind     `json:"errorKind,omitempty"`
	Error             string       `json:"error,omitempty"`
	CleanupError      string       `json:"cleanupError,omitempty"`
	Timestamp         time.Time    `json:"timestamp"`
}

// failure returns the aborting error, else the upload error
func (outcome Outcome) failure() error {
	if outcome.Err != nil {
		return outcome.Err
	}
	return outcome.Upload.Err
}
