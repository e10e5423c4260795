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

package application

import (
	"github.com/irantalent/estekhdam/internal/application/internal/domain"
	"github.com/irantalent/estekhdam/internal/application/internal/event"
	"github.com/irantalent/estekhdam/internal/application/internal/service"
	"github.com/irantalent/estekhdam/internal/application/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Application = domain.Application
type Summary = domain.Summary
type Snapshot = domain.Snapshot
type Status = domain.Status
type ApplicationService = service.ApplicationService
type ResumeService = service.ResumeService
type DecisionEventConsumer = event.DecisionEventConsumer

const (
	StatusPending  = domain.StatusPending
	StatusApproved = domain.StatusApproved
	StatusRejected = domain.StatusRejected
)

type Module struct {
	Hdl       *Handler
	AdminHdl  *AdminHandler
	Svc       ApplicationService
	ResumeSvc ResumeService
	Consumer  *DecisionEventConsumer
}
