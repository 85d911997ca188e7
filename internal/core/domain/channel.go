package domain

// ChannelProfile is the public view of a user as a channel, as seen by a particular viewer.
type ChannelProfile struct {
	UserID                    string  `json:"userID"`
	Username                  string  `json:"username"`
	FullName                  string  `json:"fullName"`
	Email                     string  `json:"email"`
	AvatarURL                 string  `json:"avatar"`
	CoverImageURL             *string `json:"coverImage,omitempty"`
	SubscribersCount          int64   `json:"subscribersCount"`
	ChannelsSubscribedToCount int64   `json:"channelsSubscribedToCount"`
	IsSubscribed              bool    `json:"isSubscribed"`
}
