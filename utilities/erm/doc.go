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
Package erm manages errors: the kinds of failure a transfer may hit and whether a remote error looks transient

Kinds

- transfer_error download or delete I/O failures

- transform_error external image utility failures

- auth_error credential acquisition failures

- upload_error remote document creation failures

- cleanup_error staging file or source object deletion failures

*/
package erm
