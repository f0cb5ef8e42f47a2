package common

import (
	"errors"

	"shareit/src/apperr"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

func CreateUser(body *types.CreateUserRequestBody) (*models.User, error) {
	conn := db.GetDb()
	if err := ensureEmailFree(conn, body.Email, 0); err != nil {
		return nil, err
	}
	user := models.User{
		Name:  body.Name,
		Email: body.Email,
	}
	if err := conn.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a merge-patch: nil fields in the body are left untouched.
func UpdateUser(id uint, body *types.UpdateUserRequestBody) (*models.User, error) {
	conn := db.GetDb()
	user, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if body.Email != nil && *body.Email != user.Email {
		if err := ensureEmailFree(conn, *body.Email, id); err != nil {
			return nil, err
		}
		user.Email = *body.Email
	}
	if body.Name != nil {
		user.Name = *body.Name
	}
	if err := conn.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := db.GetDb().
		Model(&models.User{}).
		Where(&models.User{ID: id}).
		First(&user).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User is not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	if err := db.GetDb().Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the identity record. Owned items and bookings are left
// in place; no cascade semantics are defined for them.
func DeleteUser(id uint) error {
	return db.GetDb().Delete(&models.User{}, id).Error
}

// EnsureUser resolves the id or fails with the not-found kind.
func EnsureUser(id uint) error {
	_, err := GetUserByID(id)
	return err
}

func ensureEmailFree(conn *gorm.DB, email string, selfID uint) error {
	var count int64
	q := conn.Model(&models.User{}).Where("email = ?", email)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("User with email %s already exists", email)
	}
	return nil
}
