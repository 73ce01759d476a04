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
	"log"
	"time"

	"github.com/BrunoReboul/movetodrive/utilities/gcs"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
)

// run holds the state of one invocation
type run struct {
	pipeline *Pipeline
	eventID  string
	event    gcs.ObjectEvent
	start    time.Time
}

func (r *run) log(entry logging.Entry) {
	entry.MicroserviceName = r.pipeline.LogEntry.MicroserviceName
	entry.InstanceName = r.pipeline.LogEntry.InstanceName
	entry.Environment = r.pipeline.LogEntry.Environment
	entry.TriggeringEventID = r.eventID
	entry.Bucket = r.event.Bucket
	entry.ObjectName = r.event.Name
	log.Println(entry)
}
