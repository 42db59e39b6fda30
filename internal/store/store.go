// Package store implements the engine's storage interfaces on GORM.
package store

import (
	"errors"

	"pawgrove/internal/models"
	"pawgrove/internal/services"

	"gorm.io/gorm"
)

// Comments is the GORM-backed comment store.
type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

func (s *Comments) ListByContext(ctxType models.ContextType, ctxID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("context_type = ? AND context_id = ?", ctxType, ctxID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *Comments) Get(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (s *Comments) GetByCid(cid string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Preload("User").Where("cid = ?", cid).First(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (s *Comments) Create(c *models.Comment) error {
	return s.db.Create(c).Error
}

func (s *Comments) Update(c *models.Comment) error {
	return s.db.Save(c).Error
}

func (s *Comments) Delete(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.Comment{}, ids).Error
}

// Contexts resolves and persists discussion state rows.
type Contexts struct {
	db *gorm.DB
}

func NewContexts(db *gorm.DB) *Contexts {
	return &Contexts{db: db}
}

func (s *Contexts) GetContext(ctxType models.ContextType, ctxID uint) (*models.DiscussionContext, error) {
	var dctx models.DiscussionContext
	err := s.db.Where("context_type = ? AND context_id = ?", ctxType, ctxID).First(&dctx).Error
	if err != nil {
		return nil, translate(err)
	}
	return &dctx, nil
}

func (s *Contexts) SaveContext(dctx *models.DiscussionContext) error {
	return s.db.Save(dctx).Error
}

// Register creates the discussion row for a surface the first time its host
// object claims it. Idempotent on the (type, id) pair.
func (s *Contexts) Register(ctxType models.ContextType, ctxID, ownerID uint) (*models.DiscussionContext, error) {
	dctx := models.DiscussionContext{ContextType: ctxType, ContextID: ctxID, OwnerID: ownerID}
	err := s.db.Where("context_type = ? AND context_id = ?", ctxType, ctxID).
		FirstOrCreate(&dctx).Error
	if err != nil {
		return nil, err
	}
	return &dctx, nil
}

// Blocks answers the bidirectional blocking question.
type Blocks struct {
	db *gorm.DB
}

func NewBlocks(db *gorm.DB) *Blocks {
	return &Blocks{db: db}
}

func (s *Blocks) AreBlocked(a, b uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("(user_id = ? AND blocked_id = ?) OR (user_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// BlockedIDs lists the users this user has blocked, for the viewer's
// block map.
func (s *Blocks) BlockedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Block{}).
		Where("user_id = ?", userID).
		Pluck("blocked_id", &ids).Error
	return ids, err
}

func (s *Blocks) Block(userID, blockedID uint) error {
	block := models.Block{UserID: userID, BlockedID: blockedID}
	return s.db.Where("user_id = ? AND blocked_id = ?", userID, blockedID).
		FirstOrCreate(&block).Error
}

func (s *Blocks) Unblock(userID, blockedID uint) error {
	return s.db.Where("user_id = ? AND blocked_id = ?", userID, blockedID).
		Delete(&models.Block{}).Error
}

// Restrictions answers the owner soft-block question.
type Restrictions struct {
	db *gorm.DB
}

func NewRestrictions(db *gorm.DB) *Restrictions {
	return &Restrictions{db: db}
}

func (s *Restrictions) IsRestricted(ownerID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Restriction{}).
		Where("owner_id = ? AND user_id = ?", ownerID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *Restrictions) Restrict(ownerID, userID uint) error {
	r := models.Restriction{OwnerID: ownerID, UserID: userID}
	return s.db.Where("owner_id = ? AND user_id = ?", ownerID, userID).
		FirstOrCreate(&r).Error
}

func (s *Restrictions) Unrestrict(ownerID, userID uint) error {
	return s.db.Where("owner_id = ? AND user_id = ?", ownerID, userID).
		Delete(&models.Restriction{}).Error
}

// Notifications persists reply notifications.
type Notifications struct {
	db *gorm.DB
}

func NewNotifications(db *gorm.DB) *Notifications {
	return &Notifications{db: db}
}

func (s *Notifications) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *Notifications) ListForUser(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Preload("Actor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (s *Notifications) MarkRead(userID, id uint) error {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

// translate maps gorm's not-found onto the engine's sentinel so callers
// deal with one error taxonomy. Other store failures pass through
// unchanged.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}
