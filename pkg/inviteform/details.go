package inviteform

import (
	"time"

	"chodae.link/models"
)

// Details davetiye türüne özgü alanların kapalı birleşimidir.
// Her tür kendi zorunlu alanlarını taşır; ExtraData kalıcı hale getirilecek haritayı üretir.
type Details interface {
	Type() models.InvitationType
	ExtraData() models.ExtraData
	isDetails()
}

type WeddingDetails struct {
	GroomName    string
	BrideName    string
	GroomFather  string
	GroomMother  string
	BrideFather  string
	BrideMother  string
	GroomPhone   string
	BridePhone   string
	GroomAccount string
	BrideAccount string
}

type FirstBirthdayDetails struct {
	BabyName      string
	BabyGender    string
	BirthDate     string
	ParentNames   string
	ParentPhone   string
	ParentAccount string
}

// BirthdayDetails için zorunlu isim üst düzey hostName alanındadır.
type BirthdayDetails struct {
	Age          int // 0: belirtilmedi
	ContactPhone string
}

type HousewarmingDetails struct {
	HostNames    string
	NewAddress   string
	ContactPhone string
}

type SixtiethBirthdayDetails struct {
	CelebrantName   string
	CelebrantGender string
	BirthYear       int // 0: belirtilmedi
	HostNames       string
	ContactPhone    string
}

// GeneralDetails için zorunlu isim üst düzey hostName alanındadır.
type GeneralDetails struct {
	ContactPhone string
}

func (WeddingDetails) Type() models.InvitationType { return models.InvitationTypeWedding }

func (FirstBirthdayDetails) Type() models.InvitationType { return models.InvitationTypeFirstBirthday }

func (BirthdayDetails) Type() models.InvitationType { return models.InvitationTypeBirthday }

func (HousewarmingDetails) Type() models.InvitationType { return models.InvitationTypeHousewarming }

func (SixtiethBirthdayDetails) Type() models.InvitationType {
	return models.InvitationTypeSixtiethBirthday
}

func (GeneralDetails) Type() models.InvitationType { return models.InvitationTypeGeneral }

func (WeddingDetails) isDetails() {}

func (FirstBirthdayDetails) isDetails() {}

func (BirthdayDetails) isDetails() {}

func (HousewarmingDetails) isDetails() {}

func (SixtiethBirthdayDetails) isDetails() {}

func (GeneralDetails) isDetails() {}

// extraBuilder boş değerleri atlayarak harita oluşturur.
type extraBuilder models.ExtraData

func (b extraBuilder) str(key, value string) extraBuilder {
	if value != "" {
		b[key] = value
	}
	return b
}

func (b extraBuilder) num(key string, value int) extraBuilder {
	if value != 0 {
		b[key] = value
	}
	return b
}

func (d WeddingDetails) ExtraData() models.ExtraData {
	return models.ExtraData(extraBuilder{}.
		str("groomName", d.GroomName).
		str("brideName", d.BrideName).
		str("groomFather", d.GroomFather).
		str("groomMother", d.GroomMother).
		str("brideFather", d.BrideFather).
		str("brideMother", d.BrideMother).
		str("groomPhone", d.GroomPhone).
		str("bridePhone", d.BridePhone).
		str("groomAccount", d.GroomAccount).
		str("brideAccount", d.BrideAccount))
}

func (d FirstBirthdayDetails) ExtraData() models.ExtraData {
	return models.ExtraData(extraBuilder{}.
		str("babyName", d.BabyName).
		str("babyGender", d.BabyGender).
		str("birthDate", d.BirthDate).
		str("parentNames", d.ParentNames).
		str("parentPhone", d.ParentPhone).
		str("parentAccount", d.ParentAccount))
}

func (d BirthdayDetails) ExtraData() models.ExtraData {
	return models.ExtraData(extraBuilder{}.
		num("age", d.Age).
		str("contactPhone", d.ContactPhone))
}

func (d HousewarmingDetails) ExtraData() models.ExtraData {
	return models.ExtraData(extraBuilder{}.
		str("hostNames", d.HostNames).
		str("newAddress", d.NewAddress).
		str("contactPhone", d.ContactPhone))
}

func (d SixtiethBirthdayDetails) ExtraData() models.ExtraData {
	return models.ExtraData(extraBuilder{}.
		str("celebrantName", d.CelebrantName).
		str("celebrantGender", d.CelebrantGender).
		num("birthYear", d.BirthYear).
		str("hostNames", d.HostNames).
		str("contactPhone", d.ContactPhone))
}

func (d GeneralDetails) ExtraData() models.ExtraData {
	return models.ExtraData(extraBuilder{}.str("contactPhone", d.ContactPhone))
}

// readDetails extraData nesnesini türün kurallarıyla okur.
// birthday ve general türlerinde zorunlu isim üst düzey hostName'dir.
func (v *Validator) readDetails(t models.InvitationType, extra *reader, hostName string, today time.Time) Details {
	switch t {
	case models.InvitationTypeWedding:
		return WeddingDetails{
			GroomName:    extra.text("groomName", true, 50, "Please enter the groom's name."),
			BrideName:    extra.text("brideName", true, 50, "Please enter the bride's name."),
			GroomFather:  extra.optionalText("groomFather", 50),
			GroomMother:  extra.optionalText("groomMother", 50),
			BrideFather:  extra.optionalText("brideFather", 50),
			BrideMother:  extra.optionalText("brideMother", 50),
			GroomPhone:   extra.phone("groomPhone"),
			BridePhone:   extra.phone("bridePhone"),
			GroomAccount: extra.optionalText("groomAccount", 200),
			BrideAccount: extra.optionalText("brideAccount", 200),
		}

	case models.InvitationTypeFirstBirthday:
		d := FirstBirthdayDetails{
			BabyName:      extra.text("babyName", true, 50, "Please enter the baby's name."),
			BabyGender:    extra.gender("babyGender"),
			BirthDate:     extra.optionalText("birthDate", 0),
			ParentNames:   extra.optionalText("parentNames", 100),
			ParentPhone:   extra.phone("parentPhone"),
			ParentAccount: extra.optionalText("parentAccount", 200),
		}
		if d.BirthDate != "" {
			if birth, ok := parseDate(d.BirthDate, today.Location()); !ok {
				extra.fail("birthDate", "Date must be a valid YYYY-MM-DD date.")
			} else if birth.After(today) {
				extra.fail("birthDate", "Birth date cannot be in the future.")
			}
		}
		return d

	case models.InvitationTypeBirthday:
		v.requireHostName(extra.errs, hostName)
		age, _ := extra.integer("age", 1, 150)
		return BirthdayDetails{Age: age, ContactPhone: extra.phone("contactPhone")}

	case models.InvitationTypeHousewarming:
		return HousewarmingDetails{
			HostNames:    extra.text("hostNames", true, 100, "Please enter the host names."),
			NewAddress:   extra.optionalText("newAddress", 200),
			ContactPhone: extra.phone("contactPhone"),
		}

	case models.InvitationTypeSixtiethBirthday:
		d := SixtiethBirthdayDetails{
			CelebrantName:   extra.text("celebrantName", true, 50, "Please enter the celebrant's name."),
			CelebrantGender: extra.gender("celebrantGender"),
			HostNames:       extra.optionalText("hostNames", 100),
			ContactPhone:    extra.phone("contactPhone"),
		}
		d.BirthYear, _ = extra.integer("birthYear", 1900, today.Year()-60)
		return d

	default:
		v.requireHostName(extra.errs, hostName)
		return GeneralDetails{ContactPhone: extra.phone("contactPhone")}
	}
}

func (v *Validator) requireHostName(errs *ValidationError, hostName string) {
	if hostName == "" && !errs.Has("hostName") {
		errs.Add("hostName", "Please enter the host's name.")
	}
}

func parseDate(value string, loc *time.Location) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
