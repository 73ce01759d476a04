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

// Package p contains the movetodrive background cloud function triggered by GCS
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
	// failure is logged and recorded in global, invocations are then acknowledged without retry
	_ = movetodrive.Initialize(ctx, &global)
}
