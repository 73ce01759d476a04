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

package gcs

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Download streams the object content to localPath, overwriting any existing file.
// It returns once the whole object is written and the file closed.
func (objectStore *ObjectStore) Download(ctx context.Context, bucketName string, objectName string, localPath string) (err error) {
	storageObjectReader, err := objectStore.client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return errors.Wrapf(err, "storageObject.NewReader gs://%s/%s", bucketName, objectName)
	}
	defer storageObjectReader.Close()
	_, err = copyToFile(storageObjectReader, localPath)
	return err
}

func copyToFile(reader io.Reader, localPath string) (written int64, err error) {
	file, err := os.OpenFile(localPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", localPath)
	}
	written, err = io.Copy(file, reader)
	if err != nil {
		file.Close()
		return written, errors.Wrapf(err, "io.Copy to %s", localPath)
	}
	if err = file.Close(); err != nil {
		return written, errors.Wrapf(err, "close %s", localPath)
	}
	return written, nil
}
