package auth

import "jobboard_backend/internal/models"

// Политики доступа. Сервисы вызывают только эти функции,
// сравнение ролей в других местах не допускается.

// CanCreateJob - публиковать вакансии может только работодатель
func CanCreateJob(role models.UserRole) bool {
	return role == models.UserRoleEmployer
}

// CanMutateJob - изменять и удалять вакансию может только ее владелец
func CanMutateJob(callerID, ownerID uint) bool {
	return callerID != 0 && callerID == ownerID
}

// CanApply - откликаться может только соискатель
func CanApply(role models.UserRole) bool {
	return role == models.UserRoleJobSeeker
}

// CanUploadResume - файл резюме прикладывает только соискатель
func CanUploadResume(role models.UserRole) bool {
	return role == models.UserRoleJobSeeker
}

// CanManageApplication - статус отклика меняет работодатель, владеющий вакансией
func CanManageApplication(role models.UserRole, callerID, jobOwnerID uint) bool {
	return role == models.UserRoleEmployer && CanMutateJob(callerID, jobOwnerID)
}
