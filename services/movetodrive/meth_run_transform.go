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
	"context"

	"github.com/BrunoReboul/movetodrive/utilities/erm"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
)

func (r *run) transform(ctx context.Context, localPath string) error {
	if err := r.pipeline.Transformer.Transform(ctx, localPath); err != nil {
		err = erm.New(erm.TransformError, "flip", err)
		r.log(logging.Entry{
			Severity:    "ERROR",
			Message:     "transform_failed",
			Stage:       "transform",
			Description: err.Error(),
		})
		return err
	}
	r.log(logging.Entry{
		Severity: "INFO",
		Message:  "transformed",
		Stage:    "transform",
	})
	return nil
}
