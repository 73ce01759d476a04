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
	"path"

	"github.com/BrunoReboul/movetodrive/utilities/erm"
	"github.com/BrunoReboul/movetodrive/utilities/gdr"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
	"golang.org/x/oauth2"
)

// upload never returns an error, a failure is reported in the result and cleanup proceeds
func (r *run) upload(ctx context.Context, tokenSource oauth2.TokenSource, localPath string) UploadResult {
	threshold := r.pipeline.Config.SizeSkipThreshold
	if threshold != nil && r.event.HasSize && r.event.SizeBytes < *threshold {
		r.log(logging.Entry{
			Severity:    "NOTICE",
			Message:     "upload_skipped",
			Stage:       "upload",
			Description: fmt.Sprintf("size %d bytes is below threshold %d bytes", r.event.SizeBytes, *threshold),
		})
		return UploadResult{Status: UploadSkipped}
	}

	var document gdr.Document
	document.Name = path.Base(r.event.Name)
	document.FolderID = r.pipeline.Config.FolderID
	document.MimeType = r.pipeline.Config.MimeType
	documentID, err := r.pipeline.Uploader.Upload(ctx, tokenSource, localPath, document)
	if err != nil {
		err = erm.New(erm.UploadError, "create document", err)
		r.log(logging.Entry{
			Severity:    "ERROR",
			Message:     "upload_failed",
			Stage:       "upload",
			Description: fmt.Sprintf("transient %v %v", erm.IsTransient(err), err),
		})
		return UploadResult{Status: UploadFailed, Err: err}
	}
	r.log(logging.Entry{
		Severity:    "INFO",
		Message:     "uploaded",
		Stage:       "upload",
		DocumentID:  documentID,
		Description: fmt.Sprintf("document %s in folder %s", document.Name, document.FolderID),
	})
	return UploadResult{Status: Uploaded, DocumentID: documentID}
}
