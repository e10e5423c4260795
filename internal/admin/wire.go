// Copyright 2024 irantalent
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

//go:build wireinject

package admin

import (
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/irantalent/estekhdam/internal/admin/internal/service"
	"github.com/irantalent/estekhdam/internal/admin/internal/web"
)

func InitModule() (*Module, error) {
	wire.Build(
		initService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

func initService() service.AdminService {
	type Config struct {
		Username     string `yaml:"username"`
		PasswordHash string `yaml:"passwordHash"`
	}
	var cfg Config
	err := econf.UnmarshalKey("admin.account", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewAdminService(cfg.Username, cfg.PasswordHash)
}
