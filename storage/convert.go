package storage

import (
	"encoding/json"

	"cityinfo/models"
	"cityinfo/types"

	"gorm.io/datatypes"
)

func toJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return raw
}

func fromJSON[T any](raw datatypes.JSON) T {
	var v T
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &v)
	}
	return v
}

func postToModel(p *types.Post) *models.Post {
	return &models.Post{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		Images:       toJSON(p.Images),
		Tags:         toJSON(p.Tags),
		Location:     p.Location,
		Lat:          p.Lat,
		Lng:          p.Lng,
		Distance:     p.Distance,
		ContactPhone: p.ContactPhone,
		PublishTime:  p.PublishTime,
		ViewCount:    p.ViewCount,
		IsSticky:     p.IsSticky,
		Attributes:   toJSON(p.Attributes),
		MerchantID:   p.MerchantID,
		AuthorName:   p.AuthorName,
		AvatarURL:    p.AvatarURL,
	}
}

func postFromModel(m *models.Post) types.Post {
	return types.Post{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Price:        m.Price,
		Images:       fromJSON[[]string](m.Images),
		Tags:         fromJSON[[]string](m.Tags),
		Location:     m.Location,
		Lat:          m.Lat,
		Lng:          m.Lng,
		Distance:     m.Distance,
		ContactPhone: m.ContactPhone,
		PublishTime:  m.PublishTime,
		ViewCount:    m.ViewCount,
		IsSticky:     m.IsSticky,
		Attributes:   fromJSON[[]types.PostAttribute](m.Attributes),
		MerchantID:   m.MerchantID,
		AuthorName:   m.AuthorName,
		AvatarURL:    m.AvatarURL,
	}
}

func userFromModel(m *models.User) types.User {
	return types.User{
		ID:           m.ID,
		Phone:        m.Phone,
		Nickname:     m.Nickname,
		AvatarURL:    m.AvatarURL,
		IsVerified:   m.IsVerified,
		RegisterTime: m.RegisterTime,
		IsAdmin:      m.IsAdmin,
		RealName:     m.RealName,
		QQ:           m.QQ,
		Wechat:       m.Wechat,
		Address:      m.Address,
		Balance:      m.Balance,
	}
}

func userToModel(u *types.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Phone:        u.Phone,
		Nickname:     u.Nickname,
		AvatarURL:    u.AvatarURL,
		IsVerified:   u.IsVerified,
		RegisterTime: u.RegisterTime,
		IsAdmin:      u.IsAdmin,
		RealName:     u.RealName,
		QQ:           u.QQ,
		Wechat:       u.Wechat,
		Address:      u.Address,
		Balance:      u.Balance,
	}
}

func messageFromModel(m *models.Message) types.ChatMessage {
	return types.ChatMessage{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func txFromModel(m *models.WalletTransaction) types.WalletTransaction {
	return types.WalletTransaction(*m)
}

func txToModel(t *types.WalletTransaction) *models.WalletTransaction {
	m := models.WalletTransaction(*t)
	return &m
}

func withdrawalFromModel(m *models.Withdrawal) types.WithdrawalRequest {
	return types.WithdrawalRequest(*m)
}

func withdrawalToModel(w *types.WithdrawalRequest) *models.Withdrawal {
	m := models.Withdrawal(*w)
	return &m
}

func categoryFromModel(m *models.SysCategory) types.SysCategory {
	return types.SysCategory(*m)
}

func merchantFromModel(m *models.Merchant) types.Merchant {
	return types.Merchant(*m)
}

func serviceFromModel(m *models.ServiceItem) types.ServiceItem {
	return types.ServiceItem(*m)
}

func bannerFromModel(m *models.Banner) types.Banner {
	return types.Banner(*m)
}
