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
	"fmt"

	"github.com/BrunoReboul/movetodrive/utilities/ffo"
	"github.com/BrunoReboul/movetodrive/utilities/validater"
)

// loadConfiguration reads and validates the settings and the service account credentials
func loadConfiguration(settingsPath string, credentialsPath string) (instanceDeployment *InstanceDeployment, credentials Credentials, err error) {
	instanceDeployment = NewInstanceDeployment()
	err = ffo.ReadUnmarshalYAML(settingsPath, instanceDeployment)
	if err != nil {
		return nil, credentials, fmt.Errorf("ReadUnmarshalYAML %s %v", settingsPath, err)
	}
	err = validater.ValidateStruct(instanceDeployment, "instanceDeployment")
	if err != nil {
		return nil, credentials, fmt.Errorf("ValidateStruct %s %v", settingsPath, err)
	}
	err = ffo.ReadUnmarshalJSON(credentialsPath, &credentials)
	if err != nil {
		return nil, credentials, fmt.Errorf("ReadUnmarshalJSON %s %v", credentialsPath, err)
	}
	err = validater.ValidateStruct(&credentials, "credentials")
	if err != nil {
		return nil, credentials, fmt.Errorf("ValidateStruct %s %v", credentialsPath, err)
	}
	return instanceDeployment, credentials, nil
}
