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

import (
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// getJWTConfig build JWT config with optional impersonification
func getJWTConfig(clientEmail string, privateKey string, scopes []string, subject string, tokenURL string) *jwt.Config {
	if tokenURL == "" {
		tokenURL = google.JWTTokenURL
	}
	return &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     scopes,
		Subject:    subject,
		TokenURL:   tokenURL,
	}
}
