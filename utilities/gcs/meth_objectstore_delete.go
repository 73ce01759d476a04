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

	"github.com/pkg/errors"
)

// Delete removes the object from the bucket
func (objectStore *ObjectStore) Delete(ctx context.Context, bucketName string, objectName string) (err error) {
	err = objectStore.client.Bucket(bucketName).Object(objectName).Delete(ctx)
	if err != nil {
		return errors.Wrapf(err, "storageObject.Delete gs://%s/%s", bucketName, objectName)
	}
	return nil
}
