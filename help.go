// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Happiness %s**

Keep countries and their happiness scores in a binary search tree keyed by name.
Look countries up, see the path the tree takes to reach them, and list the happiest or least happy ones.

Built with Go %s

# 1. Features
* Load countries from a six-column CSV file (Name, Capital, Population, GDP, Area, Happiness)
* Insert, delete and search countries by name
* Print the tree inorder, preorder or postorder
* Show the top or bottom N countries by happiness
* Numbered menu, scriptable shell, interactive browser and bar chart

# 2. Commands
* **happiness** or **happiness menu**: numbered menu
* **happiness shell**: command shell, reads a script from stdin when it is not a terminal
* **happiness exec "top 5"**: run shell commands given as arguments
* **happiness print --order preorder**: print a traversal
* **happiness find NAME**, **happiness path NAME**: search a country
* **happiness top [N]**, **happiness bottom [N]**: rank countries
* **happiness shape**: draw the tree
* **happiness tui**: browse countries with prefix search
* **happiness chart [--bottom] [N]**: bar chart of a ranking
* **happiness settings**: show or create ~/.happiness.yaml

# 3. Notes
* Country names are compared byte by byte, so "Zambia" sorts before "argentina"
* Inserting a name that already exists keeps the original score
* Copy to clipboard in the browser on Linux requires 'xclip' or 'xsel'

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
