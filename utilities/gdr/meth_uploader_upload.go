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

package gdr

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Upload streams the local file to a new Drive document and returns its ID
func (uploader *Uploader) Upload(ctx context.Context, tokenSource oauth2.TokenSource, localPath string, document Document) (documentID string, err error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", localPath)
	}
	defer file.Close()

	clientOptions := []option.ClientOption{option.WithTokenSource(tokenSource)}
	clientOptions = append(clientOptions, uploader.ClientOptions...)
	driveService, err := drive.NewService(ctx, clientOptions...)
	if err != nil {
		return "", errors.Wrap(err, "drive.NewService")
	}

	var driveFile drive.File
	driveFile.Name = document.Name
	if document.FolderID != "" {
		driveFile.Parents = []string{document.FolderID}
	}
	createdFile, err := driveService.Files.Create(&driveFile).
		Media(file, googleapi.ContentType(document.MimeType)).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", errors.Wrapf(err, "driveService.Files.Create %s", document.Name)
	}
	return createdFile.Id, nil
}
