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
Package gcs handles Google Cloud Storage objects: trigger event payloads, download to a local file, delete

Event variants

- finalize: google.storage.object.finalize, fired once the object creation or overwrite is complete.

- change: legacy object.change stream, also fired on deletion and metadata updates, carries resourceState and metageneration.

Both payloads decode into Event, NewObjectEvent normalizes them into an ObjectEvent.

*/
package gcs
