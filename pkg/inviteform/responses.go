package inviteform

const (
	MinGuestCount     = 1
	MaxGuestCount     = 20
	DefaultGuestCount = 1
)

// RSVPInput doğrulanmış katılım yanıtıdır. Boş isteğe bağlı alanlar nil'dir.
type RSVPInput struct {
	GuestName  string
	GuestPhone *string
	GuestCount int
	Attending  bool
	Message    *string
}

// GuestbookInput doğrulanmış ziyaretçi defteri mesajıdır.
type GuestbookInput struct {
	AuthorName string
	Content    string
}

// ValidateRSVP katılım yanıtını doğrular; guestCount verilmezse 1 kabul edilir.
func ValidateRSVP(payload map[string]any) (RSVPInput, error) {
	errs := &ValidationError{}
	r := newReader(payload, "", errs)

	in := RSVPInput{
		GuestName:  r.text("guestName", true, 50, "Please enter your name."),
		GuestPhone: optional(r.optionalText("guestPhone", 20)),
		GuestCount: DefaultGuestCount,
	}
	if n, present := r.integer("guestCount", MinGuestCount, MaxGuestCount); present {
		in.GuestCount = n
	}
	in.Attending, _ = r.boolean("attending", true, "Please tell us whether you will attend.")
	in.Message = optional(r.optionalText("message", 300))

	if err := errs.err(); err != nil {
		return RSVPInput{}, err
	}
	return in, nil
}

// ValidateGuestbook ziyaretçi defteri mesajını doğrular.
func ValidateGuestbook(payload map[string]any) (GuestbookInput, error) {
	errs := &ValidationError{}
	r := newReader(payload, "", errs)

	in := GuestbookInput{
		AuthorName: r.text("authorName", true, 50, "Please enter your name."),
		Content:    r.text("content", true, 500, "Please enter a message."),
	}
	if err := errs.err(); err != nil {
		return GuestbookInput{}, err
	}
	return in, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
