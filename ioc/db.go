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

package ioc

import (
	"github.com/ecodeclub/jobboard/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/glebarez/sqlite"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

// InitDB 本地会话存储，默认是一个 sqlite 文件，也可以切到 mysql
func InitDB() *egorm.Component {
	type Config struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	}
	cfg := Config{Driver: "sqlite", DSN: "jobboard.db"}
	err := econf.UnmarshalKey("storage", &cfg)
	if err != nil {
		panic(err)
	}
	var db *egorm.Component
	switch cfg.Driver {
	case "mysql":
		database.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	default:
		db, err = gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			panic(err)
		}
	}
	err = db.Use(database.NewGormTracingPlugin())
	if err != nil {
		panic(err)
	}
	return db
}
