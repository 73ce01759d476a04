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

package imt

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Transform overwrites the image at localPath with its flipped version
func (flipper *Flipper) Transform(ctx context.Context, localPath string) error {
	commandName := flipper.CommandName
	if commandName == "" {
		commandName = DefaultCommandName
	}
	output, err := exec.CommandContext(ctx, commandName, localPath, "-flip", localPath).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "%s %s -flip: %s", commandName, localPath, strings.TrimSpace(string(output)))
	}
	return nil
}
