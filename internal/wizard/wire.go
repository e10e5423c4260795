//go:build wireinject

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

package wizard

import (
	"github.com/google/wire"
	"github.com/irantalent/estekhdam/internal/draft"
	"github.com/irantalent/estekhdam/internal/education"
	"github.com/irantalent/estekhdam/internal/profile"
	"github.com/irantalent/estekhdam/internal/skill"
	"github.com/irantalent/estekhdam/internal/wizard/internal/service"
	"github.com/irantalent/estekhdam/internal/wizard/internal/web"
	"github.com/irantalent/estekhdam/internal/work"
)

func InitModule(
	profileModule *profile.Module,
	educationModule *education.Module,
	workModule *work.Module,
	skillModule *skill.Module,
	draftModule *draft.Module) *Module {
	wire.Build(
		service.NewWizardService,
		web.NewHandler,
		wire.FieldsOf(new(*profile.Module), "Svc"),
		wire.FieldsOf(new(*education.Module), "Svc"),
		wire.FieldsOf(new(*work.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*draft.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
