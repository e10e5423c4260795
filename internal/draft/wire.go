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

package draft

import (
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/draft/internal/repository/cache"
	"github.com/irantalent/estekhdam/internal/draft/internal/service"
	"github.com/irantalent/estekhdam/internal/draft/internal/web"
)

func InitModule(ec ecache.Cache) (*Module, error) {
	wire.Build(
		cache.NewDraftECache,
		service.NewDraftService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}
