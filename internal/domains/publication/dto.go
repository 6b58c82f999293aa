package publication

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"quantumdb-backend/internal/shared"
)

var talkTimePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// CreatePublicationRequest registers a paper or talk. The presenter cannot be
// set here; authorships do not exist yet, so it could never pass the
// presenter-is-author check. Set it via Update once authors are listed.
type CreatePublicationRequest struct {
	ConferenceID uuid.UUID `json:"conference_id"`
	CanonicalKey string    `json:"canonical_key"`

	DOI      *string  `json:"doi,omitempty"`
	ArxivIDs []string `json:"arxiv_ids,omitempty"`
	Title    string   `json:"title"`
	Abstract *string  `json:"abstract,omitempty"`

	PaperType       string  `json:"paper_type"`
	Pages           *string `json:"pages,omitempty"`
	SessionName     *string `json:"session_name,omitempty"`
	PresentationURL *string `json:"presentation_url,omitempty"`
	VideoURL        *string `json:"video_url,omitempty"`
	YoutubeID       *string `json:"youtube_id,omitempty"`

	Award         *string    `json:"award,omitempty"`
	AwardDate     *time.Time `json:"award_date,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`

	IsProceedingsTrack bool `json:"is_proceedings_track,omitempty"`

	TalkDate        *time.Time `json:"talk_date,omitempty"`
	TalkTime        *string    `json:"talk_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Creator string `json:"creator"`
}

func (r CreatePublicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ConferenceID,
			validation.Required.Error("conference id is required"),
			validation.By(uuidRule),
		),
		validation.Field(&r.CanonicalKey,
			validation.Required.Error("canonical key is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.PaperType,
			validation.Required.Error("paper type is required"),
			validation.By(paperTypeRule),
		),
		validation.Field(&r.PresentationURL,
			validation.When(r.PresentationURL != nil, is.URL),
		),
		validation.Field(&r.VideoURL,
			validation.When(r.VideoURL != nil, is.URL),
		),
		validation.Field(&r.TalkTime,
			validation.When(r.TalkTime != nil,
				validation.Match(talkTimePattern).Error("talk time must be HH:MM or HH:MM:SS"),
			),
		),
		validation.Field(&r.DurationMinutes,
			validation.When(r.DurationMinutes != nil,
				validation.Min(0).Error("duration must not be negative"),
			),
		),
		validation.Field(&r.Creator,
			validation.Required.Error("creator is required"),
		),
	)
}

// UpdatePublicationRequest is a partial update; nil fields keep current
// values. Setting PresenterAuthorID re-checks the presenter-is-author rule.
// A nil PresenterAuthorID keeps the current presenter; clearing it goes
// through the service's ClearPresenter operation instead.
type UpdatePublicationRequest struct {
	DOI      *string  `json:"doi,omitempty"`
	ArxivIDs []string `json:"arxiv_ids,omitempty"`
	Title    *string  `json:"title,omitempty"`
	Abstract *string  `json:"abstract,omitempty"`

	PaperType       *string `json:"paper_type,omitempty"`
	Pages           *string `json:"pages,omitempty"`
	SessionName     *string `json:"session_name,omitempty"`
	PresentationURL *string `json:"presentation_url,omitempty"`
	VideoURL        *string `json:"video_url,omitempty"`
	YoutubeID       *string `json:"youtube_id,omitempty"`

	Award         *string    `json:"award,omitempty"`
	AwardDate     *time.Time `json:"award_date,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`

	PresenterAuthorID  *uuid.UUID `json:"presenter_author_id,omitempty"`
	IsProceedingsTrack *bool      `json:"is_proceedings_track,omitempty"`

	TalkDate        *time.Time `json:"talk_date,omitempty"`
	TalkTime        *string    `json:"talk_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Modifier string `json:"modifier"`
}

func (r UpdatePublicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 0)),
		),
		validation.Field(&r.PaperType,
			validation.When(r.PaperType != nil, validation.By(paperTypeRule)),
		),
		validation.Field(&r.PresentationURL,
			validation.When(r.PresentationURL != nil, is.URL),
		),
		validation.Field(&r.VideoURL,
			validation.When(r.VideoURL != nil, is.URL),
		),
		validation.Field(&r.TalkTime,
			validation.When(r.TalkTime != nil,
				validation.Match(talkTimePattern).Error("talk time must be HH:MM or HH:MM:SS"),
			),
		),
		validation.Field(&r.DurationMinutes,
			validation.When(r.DurationMinutes != nil,
				validation.Min(0).Error("duration must not be negative"),
			),
		),
		validation.Field(&r.Modifier,
			validation.Required.Error("modifier is required"),
		),
	)
}

// AddAuthorshipRequest lists an author on a publication.
type AddAuthorshipRequest struct {
	AuthorID        uuid.UUID `json:"author_id"`
	AuthorPosition  int       `json:"author_position"`
	PublishedAsName string    `json:"published_as_name"`
	Affiliation     *string   `json:"affiliation,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Creator string `json:"creator"`
}

func (r AddAuthorshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			validation.By(uuidRule),
		),
		validation.Field(&r.AuthorPosition,
			validation.Required.Error("author position is required"),
			validation.Min(1).Error("author position must be 1 or greater"),
		),
		validation.Field(&r.PublishedAsName,
			validation.Required.Error("published-as name is required"),
		),
		validation.Field(&r.Creator,
			validation.Required.Error("creator is required"),
		),
	)
}

// UpdateAuthorshipRequest is a partial authorship update.
type UpdateAuthorshipRequest struct {
	AuthorPosition  *int    `json:"author_position,omitempty"`
	PublishedAsName *string `json:"published_as_name,omitempty"`
	Affiliation     *string `json:"affiliation,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Modifier string `json:"modifier"`
}

func (r UpdateAuthorshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorPosition,
			validation.When(r.AuthorPosition != nil,
				validation.Min(1).Error("author position must be 1 or greater"),
			),
		),
		validation.Field(&r.Modifier,
			validation.Required.Error("modifier is required"),
		),
	)
}

// PublicationFilter narrows List results. Search runs full-text over
// title+abstract, ranked by relevance; a conference filter orders by session
// then title; otherwise newest first.
type PublicationFilter struct {
	ConferenceID *uuid.UUID `json:"conference_id,omitempty"`
	PaperType    *PaperType `json:"paper_type,omitempty"`
	Search       string     `json:"search,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
}

// AuthorshipFilter narrows authorship listings.
type AuthorshipFilter struct {
	PublicationID *uuid.UUID `json:"publication_id,omitempty"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
}

func uuidRule(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "must be a valid id")
	}
	return nil
}

func paperTypeRule(value interface{}) error {
	switch v := value.(type) {
	case string:
		_, err := ParsePaperType(v)
		return err
	case *string:
		if v == nil {
			return nil
		}
		_, err := ParsePaperType(*v)
		return err
	}
	return ErrInvalidPaperType
}
