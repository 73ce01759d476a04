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

/*
Package movetodrive moves images delivered in a GCS bucket to a Google Drive folder

Triggered by

Google Cloud Storage event, either the finalize event or the legacy object change stream.

Instances

One per bucket.

Processing

- Filter: ignore non images, deletions and metadata only changes.

- Stage: download the object to the temporary folder, named after its base name.

- Transform (optional): flip the image upside down with ImageMagick.

- Authorize: get a bearer token for the Drive API from a service account key.

- Upload: create the Drive document in the configured folder, skipped when the object is smaller than the optional size threshold.

- Cleanup: remove the local file, then delete the bucket object.

Cleanup always runs once the event passed the filter, including after a failed or skipped upload.
The bucket object is then deleted even though the image did not reach Drive.

Output

- One Google Drive document per image.

- Optionally one Pub/Sub report message per processed image.

Cardinality

One-one: one bucket object - one Drive document.

Automatic retrying

No. Failures are logged, the invocation completes. Only a missing event context asks the platform to retry.

Settings

- settings.yaml InstanceDeployment: core names, gcf.retryTimeOutSeconds, pipeline.enableTransform, pipeline.sizeSkipThresholdBytes, imt.commandName, gdr.mimeType, gdr.impersonateUser, gps.notificationTopicName.

- config.json service account credentials: client_email, private_key, drive_folder.

Implementation example

 package p
 import (
     "context"

     "github.com/BrunoReboul/movetodrive/services/movetodrive"
     "github.com/BrunoReboul/movetodrive/utilities/gcs"
 )
 var global movetodrive.Global
 var ctx = context.Background()

 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event) error {
     return movetodrive.EntryPoint(ctxEvent, gcsEvent, &global)
 }

 func init() {
     movetodrive.Initialize(ctx, &global)
 }

*/
package movetodrive
