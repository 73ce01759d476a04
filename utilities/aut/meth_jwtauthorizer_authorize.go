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
	"context"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Authorize fetches a fresh token. Nothing is cached between calls.
func (jwtAuthorizer *JWTAuthorizer) Authorize(ctx context.Context) (oauth2.TokenSource, error) {
	if jwtAuthorizer.ClientEmail == "" || jwtAuthorizer.PrivateKey == "" {
		return nil, errors.New("missing client email or private key")
	}
	jwtConfig := getJWTConfig(jwtAuthorizer.ClientEmail,
		jwtAuthorizer.PrivateKey,
		jwtAuthorizer.Scopes,
		jwtAuthorizer.Subject,
		jwtAuthorizer.TokenURL)
	token, err := jwtConfig.TokenSource(ctx).Token()
	if err != nil {
		return nil, errors.Wrapf(err, "jwt token for %s", jwtAuthorizer.ClientEmail)
	}
	return oauth2.StaticTokenSource(token), nil
}
