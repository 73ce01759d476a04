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

package aut

// JWTAuthorizer obtains bearer tokens for a service account identity
type JWTAuthorizer struct {
	ClientEmail string
	PrivateKey  string
	Scopes      []string
	// Subject optional user to impersonate, requires domain wide delegation
	Subject string
	// TokenURL defaults to the Google OAuth2 token endpoint
	TokenURL string
}
