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
	"fmt"

	"github.com/BrunoReboul/movetodrive/utilities/erm"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
)

// stage returns the local path as soon as it is known so that cleanup can remove a partial download
func (r *run) stage(ctx context.Context) (localPath string, err error) {
	localPath, err = StagingPath(r.pipeline.Config.TempDir, r.event.Name)
	if err != nil {
		err = erm.New(erm.TransferError, "staging path", err)
		r.log(logging.Entry{
			Severity:    "ERROR",
			Message:     "stage_failed",
			Stage:       "stage",
			Description: err.Error(),
		})
		return "", err
	}
	err = r.pipeline.ObjectStore.Download(ctx, r.event.Bucket, r.event.Name, localPath)
	if err != nil {
		err = erm.New(erm.TransferError, "download", err)
		r.log(logging.Entry{
			Severity:    "ERROR",
			Message:     "stage_failed",
			Stage:       "stage",
			Description: err.Error(),
		})
		return localPath, err
	}
	r.log(logging.Entry{
		Severity:    "INFO",
		Message:     "staged",
		Stage:       "stage",
		Description: fmt.Sprintf("image downloaded locally to %s", localPath),
	})
	return localPath, nil
}
