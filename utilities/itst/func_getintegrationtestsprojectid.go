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

package itst

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

// ProjectNameMarker must be part of the name of the project hosting integration tests resources
const ProjectNameMarker = "movetodrive-build"

// GetIntegrationTestsProjectID returns the project ID of the default credentials when the project name contains ProjectNameMarker,
// so that integration tests never create or delete resources in a project that is not dedicated to that purpose.
// The test is skipped otherwise.
func GetIntegrationTestsProjectID(t *testing.T) (projectID string, creds *google.Credentials) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	ctx := context.Background()
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		t.Skipf("no default credentials %v", err)
	}
	if creds.ProjectID == "" {
		t.Skip("default credentials carry no project ID")
	}
	cloudresourcemanagerService, err := cloudresourcemanager.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		t.Skipf("cloudresourcemanager.NewService %v", err)
	}
	project, err := cloudresourcemanagerService.Projects.Get(creds.ProjectID).Context(ctx).Do()
	if err != nil {
		t.Skipf("Projects.Get %s %v", creds.ProjectID, err)
	}
	if !strings.Contains(project.Name, ProjectNameMarker) {
		t.Skipf("project %s name '%s' does not contain '%s'", project.ProjectId, project.Name, ProjectNameMarker)
	}
	return project.ProjectId, creds
}
