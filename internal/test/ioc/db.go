// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testioc

import (
	"strings"

	"github.com/ecodeclub/jobboard/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

const defaultMySQLConfig = `
mysql:
  dsn: "root:root@tcp(localhost:13316)/jobboard?charset=utf8mb4&parseTime=true&loc=Local"
`

var db *egorm.Component

// InitDB 连接本地的 MySQL，只给 e2e 测试用
func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	if econf.GetString("mysql.dsn") == "" {
		err := econf.LoadFromReader(strings.NewReader(defaultMySQLConfig), yaml.Unmarshal)
		if err != nil {
			panic(err)
		}
	}
	database.WaitForDBSetup(econf.GetString("mysql.dsn"))
	db = egorm.Load("mysql").Build()
	return db
}
