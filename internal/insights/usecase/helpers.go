package usecase

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/graphapi"
)

const productTypeReels = "REELS"
const productTypeStory = "STORY"

// mapMediaItem converts a Graph media object into a model row. Stories come
// through with product type STORY regardless of their media type.
func mapMediaItem(accountID string, item graphapi.MediaItem) model.Media {
	kind := item.MediaType
	if item.MediaProductType == productTypeStory {
		kind = model.MediaKindStory
	}

	return model.Media{
		ID:        item.ID,
		AccountID: accountID,

		Kind:   kind,
		IsReel: item.MediaProductType == productTypeReels,

		Caption:   item.Caption,
		Permalink: item.Permalink,
		MediaURL:  item.MediaURL,

		LikeCount:     item.LikeCount,
		CommentsCount: item.CommentsCount,

		Timestamp: item.Timestamp,
	}
}
