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
	"os"
	"sync"

	"github.com/BrunoReboul/movetodrive/utilities/gdr"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// callLog records the order in which the pipeline reaches its collaborators
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type fakeObjectStore struct {
	calls       *callLog
	content     []byte
	downloadErr error
	deleteErr   error
	stagedPath  string
	// localPresentAtDelete tells if the staged file still existed when the object was deleted
	localPresentAtDelete bool
}

func (f *fakeObjectStore) Download(ctx context.Context, bucketName string, objectName string, localPath string) error {
	f.calls.add("download")
	f.stagedPath = localPath
	if err := os.WriteFile(localPath, f.content, 0600); err != nil {
		return err
	}
	return f.downloadErr
}

func (f *fakeObjectStore) Delete(ctx context.Context, bucketName string, objectName string) error {
	f.calls.add("delete")
	if f.stagedPath != "" {
		_, err := os.Stat(f.stagedPath)
		f.localPresentAtDelete = err == nil
	}
	return f.deleteErr
}

type fakeTransformer struct {
	calls *callLog
	err   error
}

func (f *fakeTransformer) Transform(ctx context.Context, localPath string) error {
	f.calls.add("transform")
	if f.err != nil {
		return f.err
	}
	content, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	for i, j := 0, len(content)-1; i < j; i, j = i+1, j-1 {
		content[i], content[j] = content[j], content[i]
	}
	return os.WriteFile(localPath, content, 0600)
}

type fakeAuthorizer struct {
	calls *callLog
	err   error
}

func (f *fakeAuthorizer) Authorize(ctx context.Context) (oauth2.TokenSource, error) {
	f.calls.add("authorize")
	if f.err != nil {
		return nil, f.err
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "fake-token"}), nil
}

type fakeUploader struct {
	calls       *callLog
	documentID  string
	err         error
	gotDocument gdr.Document
	gotContent  []byte
	gotToken    string
}

func (f *fakeUploader) Upload(ctx context.Context, tokenSource oauth2.TokenSource, localPath string, document gdr.Document) (string, error) {
	f.calls.add("upload")
	f.gotDocument = document
	token, err := tokenSource.Token()
	if err != nil {
		return "", err
	}
	f.gotToken = token.AccessToken
	f.gotContent, err = os.ReadFile(localPath)
	if err != nil {
		return "", errors.Wrap(err, "read staged file")
	}
	if f.err != nil {
		return "", f.err
	}
	return f.documentID, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages [][]byte
	err      error
}

func (f *fakeNotifier) Publish(ctx context.Context, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, data)
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}
