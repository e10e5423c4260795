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

package web

import (
	"github.com/irantalent/estekhdam/internal/pkg/validate"
	"github.com/irantalent/estekhdam/internal/profile/internal/domain"
)

// checkProfile 逐字段校验，返回 字段名 -> 波斯语提示
func checkProfile(req SaveProfileReq) map[string]string {
	fields := make(map[string]string)
	if req.FirstName == "" {
		fields["firstName"] = "نام الزامی است"
	}
	if req.LastName == "" {
		fields["lastName"] = "نام خانوادگی الزامی است"
	}
	if !validate.NationalCode(req.NationalCode) {
		fields["nationalCode"] = "کد ملی باید ۱۰ رقم باشد"
	}
	if req.BirthDate == "" {
		fields["birthDate"] = "تاریخ تولد الزامی است"
	}
	if !domain.Gender(req.Gender).Valid() {
		fields["gender"] = "جنسیت نامعتبر است"
	}
	if req.Religion != "" && !domain.Religion(req.Religion).Valid() {
		fields["religion"] = "دین انتخاب‌شده نامعتبر است"
	}
	if !domain.MaritalStatus(req.MaritalStatus).Valid() {
		fields["maritalStatus"] = "وضعیت تأهل نامعتبر است"
	}
	if req.SiblingCount < 0 {
		fields["siblingCount"] = "تعداد خواهر و برادر نمی‌تواند منفی باشد"
	}
	if req.ChildrenCount < 0 {
		fields["childrenCount"] = "تعداد فرزندان نمی‌تواند منفی باشد"
	}
	if !validate.PostalCode(req.PostalCode) {
		fields["postalCode"] = "کد پستی باید ۱۰ رقم باشد"
	}
	if req.Phone != "" && !validate.Phone(req.Phone) {
		fields["phone"] = "شماره تلفن باید ۱۱ رقم باشد"
	}
	if !validate.Mobile(req.Mobile) {
		fields["mobile"] = "شماره موبایل باید با ۰۹ شروع شود و ۱۱ رقم باشد"
	}
	if !validate.Email(req.Email) {
		fields["email"] = "فرمت ایمیل نامعتبر است"
	}
	if req.EmergencyPhone != "" && !validate.Phone(req.EmergencyPhone) && !validate.Mobile(req.EmergencyPhone) {
		fields["emergencyPhone"] = "شماره تماس اضطراری نامعتبر است"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
