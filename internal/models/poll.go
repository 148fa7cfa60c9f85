package models

// Poll is a single-choice vote attached to a post. One row per post.
type Poll struct {
	ID       uint         `gorm:"primaryKey" json:"id"`
	PostID   uint         `gorm:"uniqueIndex;not null" json:"postId"`
	Question string       `gorm:"not null" json:"question"`
	Options  []PollOption `json:"options"`
}

type PollOption struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	PollID   uint       `gorm:"not null;index" json:"pollId"`
	Position int        `gorm:"not null" json:"position"`
	Text     string     `gorm:"not null" json:"text"`
	Votes    []PollVote `gorm:"foreignKey:OptionID" json:"votes"`
}

// PollVote holds one user's active vote. The (poll_id, user_id) unique
// index is what keeps a user on at most one option; changing a vote
// deletes the old row and inserts a new one.
type PollVote struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	PollID   uint `gorm:"not null;uniqueIndex:idx_poll_voter" json:"-"`
	OptionID uint `gorm:"not null;index" json:"-"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_poll_voter" json:"userId"`
}

// TotalVotes counts votes across all loaded options.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += len(opt.Votes)
	}
	return total
}

// Percentages returns each option's share of the total vote count,
// all zeros when nobody has voted yet.
func (p *Poll) Percentages() []float64 {
	out := make([]float64, len(p.Options))
	total := p.TotalVotes()
	if total == 0 {
		return out
	}
	for i, opt := range p.Options {
		out[i] = float64(len(opt.Votes)) / float64(total) * 100
	}
	return out
}
