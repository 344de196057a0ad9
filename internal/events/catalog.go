package events

import (
	"fmt"

	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/pkg/model"
)

const jobPayPerDay = 150

// jobOption rolls the number of working days when presented; pay is per day.
func jobOption(minDays, maxDays int, text, note string, e model.Effect) Option {
	return Option{Build: func(rng random.Source) Choice {
		days := random.IntRange(rng, minDays, maxDays)
		eff := e
		eff.Money = days * jobPayPerDay
		eff.Note = fmt.Sprintf(note, days)
		return Choice{Text: fmt.Sprintf(text, days, eff.Money), Effect: eff}
	}}
}

// costOption rolls a price in [base, base+spread] when presented.
func costOption(base, spread int, text string, e model.Effect) Option {
	return Option{Build: func(rng random.Source) Choice {
		cost := base + random.IntRange(rng, 0, spread)
		eff := e
		eff.Money = -cost
		return Choice{Text: fmt.Sprintf(text, cost), Effect: eff}
	}}
}

// Default returns the built-in weekly event catalog.
func Default() []*Event {
	return []*Event{
		// Daily life
		{
			ID: "G_CAMPUS_CAT", Title: "Campus cat", Weight: 8, Tags: []string{"mood"},
			Text: "The campus cat rubs against your leg. Studying suddenly feels optional.",
			Options: []Option{
				{Text: "Pet it for five minutes", Effect: model.Effect{Mood: 3, Stress: -2, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Post a photo", Effect: model.Effect{Mood: 2, Stress: -1, Social: 2, Hidden: model.Hidden{CareerPower: 0.1}}},
			},
		},
		{
			ID: "G_ROOMMATE_FIGHT", Title: "Roommate argument", Weight: 6, Tags: []string{"stress"},
			Text: "Your roommates start arguing about the air conditioner.",
			Options: []Option{
				{Text: "Join in", Effect: model.Effect{Stress: 6, Mood: -4, Social: -2}},
				{Text: "Stay out of it", Effect: model.Effect{Stress: 2, Mood: -2, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Buy drinks to make peace", Effect: model.Effect{Money: -120, Stress: -3, Mood: 1, Social: 2}},
			},
		},
		{
			ID: "G_CLUB_INVITE", Title: "Club fair", Weight: 7, Tags: []string{"social"}, CooldownWeeks: 8,
			Text: "A club booth stops you on the way to class.",
			Options: []Option{
				{Text: "Join", Effect: model.Effect{Energy: -4, Mood: 3, Social: 6, Hidden: model.Hidden{CareerPower: 0.2, Stability: 1}}},
				{Text: "Decline politely", Effect: model.Effect{TermGradeBonus: 1, Mood: 1, Social: -1, Hidden: model.Hidden{AcademicPower: 0.2}}},
			},
		},
		{
			ID: "G_MILK_TEA", Title: "Milk tea", Weight: 7, Tags: []string{"mood", "money"},
			Text: "Just one cup, says a voice in your head.",
			Options: []Option{
				{Text: "Buy it", Effect: model.Effect{Money: -30, Mood: 4, Stress: -2, Hidden: model.Hidden{Stability: 0.5}}},
				{Text: "Resist", Effect: model.Effect{Mood: -1, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "G_LIBRARY_AURA", Title: "Library grinders", Weight: 7, Tags: []string{"study"},
			Text: "Everyone around you in the library is typing furiously.",
			Options: []Option{
				{Text: "Grind along", Effect: model.Effect{Energy: -6, Stress: 5, TermGradeBonus: 2, Hidden: model.Hidden{AcademicPower: 0.8}}},
				{Text: "Go back and rest", Effect: model.Effect{Energy: 6, Stress: -4, Mood: 2, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "G_CLASS_QUIZ", Title: "Pop quiz", Weight: 6, Tags: []string{"study"},
			Text: "The lecturer calls a pop quiz and your name is on the list.",
			Options: []Option{
				{Text: "Face it", Effect: model.Effect{Stress: 6, TermGradeBonus: 1, Hidden: model.Hidden{AcademicPower: 0.3}}},
				{Text: "Cram at the last minute", Effect: model.Effect{Energy: -6, Stress: 4, TermGradeBonus: 2}},
			},
		},
		{
			ID: "G_ATTENDANCE_CHECK", Title: "Roll call", Weight: 5, Tags: []string{"study"},
			Text: "Attendance is being taken today.",
			Options: []Option{
				{Text: "Show up", Effect: model.Effect{Stress: 1, TermGradeBonus: 1}},
				{Text: "Skip and gamble", Effect: model.Effect{Mood: 1, Stress: 6, TermGradeBonus: -2}},
			},
		},
		{
			ID: "G_SHORT_VIDEO", Title: "Short video spiral", Weight: 8, Tags: []string{"mood"},
			Text: "One quick look turned into two hours.",
			Options: []Option{
				{Text: "Uninstall for a week", Effect: model.Effect{Mood: -1, Stress: 1, TermGradeBonus: 2, Hidden: model.Hidden{Stability: 2}}},
				{Text: "Keep scrolling", Effect: model.Effect{Mood: 1, Stress: 3, Energy: -5, TermGradeBonus: -2, Hidden: model.Hidden{Stability: -1}}},
			},
		},
		{
			ID: "G_RAINY_DAY", Title: "Rainy day", Weight: 6, Tags: []string{"mood"},
			Text: "It has rained all day.",
			Options: []Option{
				{Text: "Get something done indoors", Effect: model.Effect{Energy: -4, TermGradeBonus: 1, Hidden: model.Hidden{AcademicPower: 0.4}}},
				{Text: "Rest completely", Effect: model.Effect{Energy: 6, Stress: -3, Mood: 2, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "G_ROOMMATE_NOISE", Title: "Late night gaming", Weight: 6, Tags: []string{"stress"},
			Text: "Your roommate's midnight game session wakes you up.",
			Options: []Option{
				{Text: "Talk to them", Effect: model.Effect{Stress: 2, Mood: -1, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Put up with it", Effect: model.Effect{Energy: -6, Stress: 4, Hidden: model.Hidden{Stability: -1}}},
			},
		},
		{
			ID: "G_SIDE_PROJECT", Title: "Side project idea", Weight: 6, Tags: []string{"career"},
			Text: "A small side project would look great in a portfolio.",
			Options: []Option{
				{Text: "Start building", Effect: model.Effect{Energy: -6, Mood: 3, Stress: 2, Hidden: model.Hidden{CareerPower: 0.6}}},
				{Text: "Write it down for later", Effect: model.Effect{Mood: 1, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "G_STUDY_GROUP", Title: "Study buddy", Weight: 6, Tags: []string{"study"},
			Text: "Someone asks whether you want to study together.",
			Options: []Option{
				{Text: "Study together", Effect: model.Effect{Energy: -6, Stress: 4, TermGradeBonus: 2, Hidden: model.Hidden{AcademicPower: 0.6}}},
				{Text: "Decline", Effect: model.Effect{Mood: -1, Stress: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "G_BIKE_FLAT", Title: "Flat tyre", Weight: 5, Tags: []string{"money"},
			Text: "Your bike has a flat tyre.",
			Options: []Option{
				{Text: "Get it fixed", Effect: model.Effect{Money: -20, Stress: -1}},
				{Text: "Walk", Effect: model.Effect{Energy: -4, Mood: -1}},
			},
		},

		// Health
		{
			ID: "H_COLD", Title: "Seasonal cold", Weight: 5, Tags: []string{"health"}, CooldownWeeks: 4,
			Text: "You caught a cold.",
			Options: []Option{
				{Text: "Medicine and early nights", Effect: model.Effect{Energy: 8, Stress: -4, Mood: 1, Money: -30}},
				{Text: "Push through", Effect: model.Effect{Energy: -6, Stress: 4, Mood: -2}},
			},
		},
		{
			ID: "H_RUN", Title: "Morning run", Weight: 4, Tags: []string{"health"},
			Text: "Your roommate invites you for a morning run.",
			Options: []Option{
				{Text: "Run together", Effect: model.Effect{Energy: -4, Stress: -4, Mood: 2, Hidden: model.Hidden{Stability: 0.5}}},
				{Text: "Keep sleeping", Effect: model.Effect{Energy: 6, Mood: 1}},
			},
		},
		{
			ID: "H_MASSAGE", Title: "Massage parlour", Weight: 4, Tags: []string{"relax", "money"},
			Text: "A sign promises to save your neck and shoulders.",
			Options: []Option{
				costOption(180, 180, "Go in (-%d)", model.Effect{Energy: 10, Stress: -10, Mood: 3}),
				{Text: "Keep going", Effect: model.Effect{Stress: 1}},
			},
		},
		{
			ID: "H_ALLERGY", Title: "Allergies", Weight: 4, Tags: []string{"health"},
			Text: "Seasonal allergies hit hard.",
			Options: []Option{
				{Text: "Buy medicine and rest", Effect: model.Effect{Money: -40, Energy: 6, Stress: -2}},
				{Text: "Tough it out", Effect: model.Effect{Energy: -6, Stress: 3, Mood: -2}},
			},
		},
		{
			ID: "H_SLEEP_DEBT", Title: "Sleep debt", Weight: 5, Tags: []string{"health"},
			Text: "After several late nights you are running on empty.",
			Options: []Option{
				{Text: "Sleep early tonight", Effect: model.Effect{Energy: 10, Stress: -4, Mood: 1, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Keep going", Effect: model.Effect{Energy: -8, Stress: 4, TermGradeBonus: 1, Hidden: model.Hidden{Stability: -1}}},
			},
		},

		// Money
		{
			ID: "M_PHONE_BREAK", Title: "Cracked phone", Weight: 5, Tags: []string{"money"}, CooldownWeeks: 16,
			Text: "Your phone hits the desk corner and the screen cracks.",
			Options: []Option{
				costOption(300, 300, "Replace the screen (-%d)", model.Effect{Mood: -2, Stress: 2}),
				{Text: "Live with it", Effect: model.Effect{Mood: -1, Stress: 1}},
			},
		},
		{
			ID: "M_LAPTOP_REPAIR", Title: "Laptop trouble", Weight: 4, Tags: []string{"money", "study"}, CooldownWeeks: 16,
			Text: "Blue screen. The file was not saved.",
			Options: []Option{
				costOption(200, 200, "Send it for repair (-%d)", model.Effect{Stress: -2}),
				{Text: "Fix it yourself", Effect: model.Effect{Stress: 3, Mood: -1}},
			},
		},
		{
			ID: "M_LOST_CARD", Title: "Lost campus card", Weight: 4, Tags: []string{"money"},
			Text: "Your campus card is gone.",
			Options: []Option{
				{Text: "Get a replacement", Effect: model.Effect{Money: -50, Stress: 1}},
				{Text: "Borrow a friend's", Effect: model.Effect{Social: -1, Stress: 2}},
			},
		},
		{
			ID: "M_IMPULSE_BUY", Title: "Flash sale", Weight: 6, Tags: []string{"money", "mood"},
			Text: "A limited time discount appears on your feed.",
			Options: []Option{
				costOption(120, 260, "Buy it (-%d)", model.Effect{Mood: 3, Stress: -1}),
				{Text: "Resist", Effect: model.Effect{Mood: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "M_TEXTBOOKS", Title: "Textbooks", Weight: 5, Tags: []string{"money", "study"}, CooldownWeeks: 16,
			Text: "The lecturer asks everyone to buy the textbook.",
			Gates: []Gate{{WeekMin: 1, WeekMax: 6}},
			Options: []Option{
				{Text: "Buy it", Effect: model.Effect{Money: -120, TermGradeBonus: 1}},
				{Text: "Borrow or find a copy", Effect: model.Effect{Stress: 2}},
			},
		},
		{
			ID: "M_SUBSCRIPTION", Title: "Auto renewal", Weight: 4, Tags: []string{"money"},
			Text: "A subscription you forgot about renewed itself.",
			Options: []Option{
				{Text: "Let it be", Effect: model.Effect{Money: -50, Mood: -1}},
				{Text: "Cancel right away", Effect: model.Effect{Money: -50, Stress: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},

		// Jobs
		{
			ID: "J_TUTOR_INVITE", Title: "Tutoring offer", Weight: 7, Tags: []string{"job"}, CooldownWeeks: 2,
			Text: "A classmate's cousin needs a tutor.",
			Options: []Option{
				jobOption(2, 3, "Accept (%d sessions, +%d)", "Tutored %d times this week.",
					model.Effect{Energy: -12, Stress: 8, Mood: -1, TermGradeBonus: -1, Social: 1, Hidden: model.Hidden{CareerPower: 0.15}}),
				jobOption(4, 5, "Take more (%d sessions, +%d)", "Tutored %d times this week.",
					model.Effect{Energy: -20, Stress: 14, Mood: -2, TermGradeBonus: -2, Social: 1, Hidden: model.Hidden{CareerPower: 0.25}}),
				{Text: "Decline and keep studying", Effect: model.Effect{Mood: 1, Stress: -1}},
				{Text: "Decline and rest", Effect: model.Effect{Energy: 8, Stress: -8, Mood: 2}},
			},
		},
		{
			ID: "J_INTERN_INVITE", Title: "Internship help", Weight: 5, Tags: []string{"job", "career"}, CooldownWeeks: 4,
			Text: "A senior's team needs an extra pair of hands.",
			Gates: []Gate{{YearMin: 2}},
			Options: []Option{
				jobOption(2, 3, "Go (%d days, +%d)", "Interned %d days this week.",
					model.Effect{Energy: -16, Stress: 12, Mood: -2, TermGradeBonus: -2, Social: 2, Hidden: model.Hidden{CareerPower: 0.25}}),
				jobOption(4, 5, "Work overtime (%d days, +%d)", "Interned %d days this week.",
					model.Effect{Energy: -24, Stress: 18, Mood: -3, TermGradeBonus: -3, Social: 2, Hidden: model.Hidden{CareerPower: 0.35}}),
				{Text: "Pass and focus on classes", Effect: model.Effect{Mood: 1, Stress: -1}},
				{Text: "Pass and catch up on sleep", Effect: model.Effect{Energy: 10, Stress: -10, Mood: 2}},
			},
		},

		// Opportunities
		{
			ID: "C_SCHOLARSHIP_RUMOR", Title: "Scholarship rumour", Weight: 3, Tags: []string{TagBreakthrough},
			Text: "There might be a small scholarship available this term.",
			Gates: []Gate{{SocialMin: 25}},
			Options: []Option{
				{Text: "Ask around", Effect: model.Effect{Stress: 2, Social: 2, Hidden: model.Hidden{CareerPower: 0.1}}},
				{Text: "Not worth the trouble"},
			},
		},
		{
			ID: "C_COMPETITION", Title: "Competition team", Weight: 3, Tags: []string{TagBreakthrough, "study"},
			Text: "A senior invites you onto a competition team.",
			Gates: []Gate{{YearMin: 2}},
			Options: []Option{
				{Text: "Join", Effect: model.Effect{Energy: -12, Stress: 10, TermGradeBonus: 2, Hidden: model.Hidden{AcademicPower: 1, CareerPower: 0.4}}},
				{Text: "Decline", Effect: model.Effect{Mood: 1, Stress: -1}},
			},
		},

		// Routes
		{
			ID: "R_PI_CALL", Title: "Advisor needs data", Weight: 5, Tags: []string{"route:research"},
			Text: "Your advisor wants the plots by tomorrow morning.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteResearch}, YearMin: 2}},
			Options: []Option{
				{Text: "Pull an all-nighter", Effect: model.Effect{Energy: -16, Stress: 12, Mood: -2, TermGradeBonus: -2, Hidden: model.Hidden{AcademicPower: 0.5}}},
				{Text: "Ask for an extension", Effect: model.Effect{Stress: 6, Mood: -2, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "R_EXPERIMENT_FAIL", Title: "Experiment failed", Weight: 5, Tags: []string{"route:research"},
			Text: "The key step of your experiment failed.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteResearch}, YearMin: 2}},
			Options: []Option{
				{Text: "Redo it properly", Effect: model.Effect{Energy: -10, Stress: 8, TermGradeBonus: -1, Hidden: model.Hidden{AcademicPower: 0.6}}},
				{Text: "Write around it", Effect: model.Effect{Stress: 5, TermGradeBonus: -2, Hidden: model.Hidden{Luck: 0.6}}},
			},
		},
		{
			ID: "C_INTERVIEW", Title: "Interview invitation", Weight: 4, Tags: []string{"route:career"},
			Text: "A recruiter asks whether you can interview this week.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteCareer}, YearMin: 2}},
			Options: []Option{
				{Text: "Prepare and go", Effect: model.Effect{Energy: -10, Stress: 8, Hidden: model.Hidden{CareerPower: 0.8}}},
				{Text: "Chicken out", Effect: model.Effect{Mood: -2, Stress: 4, Hidden: model.Hidden{CareerPower: -0.4, Stability: -1}}},
			},
		},
		{
			ID: "C_RESUME", Title: "Resume update", Weight: 5, Tags: []string{"route:career"},
			Text: "A senior tells you to update your resume now.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteCareer}, YearMin: 2}},
			Options: []Option{
				{Text: "Update and apply", Effect: model.Effect{Energy: -6, Stress: 4, Hidden: model.Hidden{CareerPower: 1}}},
				{Text: "Next week", Effect: model.Effect{Mood: 1, Stress: 2, Hidden: model.Hidden{CareerPower: -0.3}}},
			},
		},
		{
			ID: "C_NETWORKING", Title: "Company info session", Weight: 4, Tags: []string{"route:career"},
			Text: "You are invited to a company info session.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteCareer}, YearMin: 2, SocialMin: 40}},
			Options: []Option{
				{Text: "Attend", Effect: model.Effect{Energy: -4, Stress: 2, Social: 2, Hidden: model.Hidden{CareerPower: 0.6}}},
				{Text: "Skip it", Effect: model.Effect{Mood: 1, Stress: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "C_OFFER_LETTER", Title: "Offer letter", Weight: 4, Tags: []string{"route:career", TagBreakthrough},
			Text: "The referral worked out. An offer letter is in your inbox.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteCareer}, YearMin: 3, RequireAll: []string{"offerSeed"}, ForbidAny: []string{"gotOffer"}}},
			Options: []Option{
				{Text: "Accept", Effect: model.Effect{Mood: 8, Stress: -6, Hidden: model.Hidden{CareerPower: 1}, Flags: map[string]bool{"gotOffer": true}}},
			},
		},
		{
			ID: "A_ENGLISH_TEST_BOOK", Title: "Language test registration", Weight: 4, Tags: []string{"route:abroad"},
			Text: "Registration for the language test is open.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteAbroad}, YearMin: 2, ForbidAny: []string{"bookedEnglishTest"}}},
			Options: []Option{
				{Text: "Register", Effect: model.Effect{Money: -600, Stress: 6, Hidden: model.Hidden{CareerPower: 0.3}, Flags: map[string]bool{"bookedEnglishTest": true}}},
				{Text: "Not yet", Effect: model.Effect{Stress: -1, Mood: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "A_ENGLISH_TEST_SCORE", Title: "Language test results", Weight: 6, Tags: []string{"route:abroad"},
			Text: "Your language test score is out.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteAbroad}, RequireAll: []string{"bookedEnglishTest"}, ForbidAny: []string{"englishTestDone"}}},
			Options: []Option{
				{Text: "Check the score", Effect: model.Effect{Stress: -4, Mood: 3, Hidden: model.Hidden{CareerPower: 0.5}, Flags: map[string]bool{"englishTestDone": true}}},
			},
		},
		{
			ID: "A_LANGUAGE_PARTNER", Title: "Language partner", Weight: 4, Tags: []string{"route:abroad"},
			Text: "Someone invites you to practise speaking together.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteAbroad}, YearMin: 2}},
			Options: []Option{
				{Text: "Practise together", Effect: model.Effect{Energy: -4, Stress: 1, TermGradeBonus: 1, Hidden: model.Hidden{CareerPower: 0.4}}},
				{Text: "Maybe later", Effect: model.Effect{Mood: 1, Stress: -1, Hidden: model.Hidden{Stability: 1}}},
			},
		},

		// Family background
		{
			ID: "F_ALLOWANCE_DELAY", Title: "Allowance delayed", Weight: 7, Tags: []string{"family"},
			Text: "Money is tight at home and this month's allowance will be late.",
			Gates: []Gate{{BackgroundIn: []model.Background{model.BackgroundPoor}}},
			Options: []Option{
				{Text: "Tighten your belt", Effect: model.Effect{Mood: -2, Stress: 6, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Borrow from a classmate", Effect: model.Effect{Money: 200, Stress: 3, Flags: map[string]bool{"debt": true}}},
			},
		},
		{
			ID: "F_RED_PACKET", Title: "Red packet from home", Weight: 6, Tags: []string{"family"},
			Text: "Your family checks in and sends a little money.",
			Gates: []Gate{{BackgroundIn: []model.Background{model.BackgroundOK, model.BackgroundMid, model.BackgroundRich}}},
			Options: []Option{
				{Text: "Accept it", Effect: model.Effect{Money: 120, Mood: 2, Stress: -2, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Refuse it", Effect: model.Effect{Mood: -1, Stress: 1, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "F_HIGH_CONSUME", Title: "Expensive temptation", Weight: 5, Tags: []string{"family", "money"},
			Text: "Something expensive and wonderful shows up in your feed.",
			Gates: []Gate{{BackgroundIn: []model.Background{model.BackgroundMid, model.BackgroundRich}}},
			Options: []Option{
				{Text: "Buy it", Effect: model.Effect{Money: -900, Mood: 6, Stress: -2, Hidden: model.Hidden{Stability: 0.5}}},
				{Text: "Hold off", Effect: model.Effect{Mood: -1, Stress: 1, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 2}}},
			},
		},
		{
			ID: "F_DEBT_REMIND", Title: "Debt reminder", Weight: 4, Tags: []string{"family"},
			Text: "You remember you still owe a classmate money.",
			Gates: []Gate{{RequireAny: []string{"debt"}}},
			Options: []Option{
				{Text: "Pay back everything", Effect: model.Effect{Money: -200, Stress: -4, Hidden: model.Hidden{Stability: 1}, Flags: map[string]bool{"debt": false}}},
				{Text: "Pay back part of it", Effect: model.Effect{Money: -150, Stress: -2, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Put it off", Effect: model.Effect{Stress: 3, Mood: -1, Hidden: model.Hidden{Stability: -2}}},
			},
		},

		// Track specific
		{
			ID: "A_STEM_DEBUG_HELL", Title: "Debugging marathon", Weight: 6, Tags: []string{"academy", "study"},
			Text: "The code will not run and the report is due.",
			Gates: []Gate{{TrackIn: []model.Track{model.TrackScience}}},
			Options: []Option{
				{Text: "Stay up all night", Effect: model.Effect{Energy: -18, Stress: 14, Mood: -2, TermGradeBonus: 1, Hidden: model.Hidden{AcademicPower: 1}}},
				{Text: "Ask a TA", Effect: model.Effect{Stress: 3, Mood: 1, TermGradeBonus: 2, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "A_MED_WARD", Title: "Ward round grilling", Weight: 6, Tags: []string{"academy", "study"},
			Text: "The attending fires questions faster than you can think.",
			Gates: []Gate{{TrackIn: []model.Track{model.TrackMedicine}}},
			Options: []Option{
				{Text: "Memorise everything", Effect: model.Effect{Energy: -12, Stress: 12, TermGradeBonus: 3, Hidden: model.Hidden{AcademicPower: 1.2}}},
				{Text: "Take a breather", Effect: model.Effect{Stress: -6, Mood: 2, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 1}}},
			},
		},
		{
			ID: "A_BIZ_CASE", Title: "Surprise case presentation", Weight: 6, Tags: []string{"academy"},
			Text: "Group case presentations are due next week.",
			Gates: []Gate{{TrackIn: []model.Track{model.TrackBusiness}}},
			Options: []Option{
				{Text: "Lead the group", Effect: model.Effect{Energy: -10, Stress: 8, TermGradeBonus: 2, Hidden: model.Hidden{CareerPower: 0.6}}},
				{Text: "Coast along", Effect: model.Effect{Mood: 1, Stress: 4, TermGradeBonus: -1, Hidden: model.Hidden{Stability: -1}}},
			},
		},
		{
			ID: "A_ART_DEADLINE", Title: "Essay deadline", Weight: 6, Tags: []string{"academy", "study"},
			Text: "The document is still called Untitled 1.",
			Gates: []Gate{{TrackIn: []model.Track{model.TrackArts}}},
			Options: []Option{
				{Text: "Start writing", Effect: model.Effect{Energy: -8, Stress: 6, TermGradeBonus: 3, Hidden: model.Hidden{AcademicPower: 1}}},
				{Text: "Procrastinate", Effect: model.Effect{Mood: 1, Stress: 6, TermGradeBonus: -2, Hidden: model.Hidden{Stability: -1}}},
			},
		},

		// Finals
		{
			ID: "E_FINAL_PANIC", Title: "Finals panic", Weight: 8, Tags: []string{"exam"},
			Text: "Exams are close and your heart is pounding.",
			Gates: []Gate{{WeekMin: 14, WeekMax: 16}},
			Options: []Option{
				{Text: "Revise hard", Effect: model.Effect{Energy: -14, Stress: 16, Mood: -1, TermGradeBonus: 4, Hidden: model.Hidden{AcademicPower: 1.2}}},
				{Text: "Play dead", Effect: model.Effect{Mood: 1, Stress: 10, Energy: -6, TermGradeBonus: -4, Hidden: model.Hidden{Stability: -2}}},
			},
		},
		{
			ID: "E_FINAL_MATERIALS", Title: "Revision materials", Weight: 6, Tags: []string{"exam"},
			Text: "A classmate shares a mountain of revision notes.",
			Gates: []Gate{{WeekMin: 13, WeekMax: 16}},
			Options: []Option{
				{Text: "Skim the key points", Effect: model.Effect{Energy: -8, Stress: 6, TermGradeBonus: 3, Hidden: model.Hidden{Stability: 1}}},
				{Text: "Read all of it", Effect: model.Effect{Energy: -14, Stress: 10, TermGradeBonus: 4, Hidden: model.Hidden{AcademicPower: 1}}},
			},
		},

		// Rare
		{
			ID: "RARE_SCI_CHANCE", Title: "Paper opportunity", Weight: 1, Tags: []string{"rare", TagBreakthrough}, CooldownWeeks: 32,
			Text: "The project you joined might turn into a paper.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteResearch}, YearMin: 2, SocialMin: 55}},
			Options: []Option{
				{Text: "Push to the end", Effect: model.Effect{Energy: -22, Stress: 18, Mood: -2, TermGradeBonus: -2, Hidden: model.Hidden{AcademicPower: 1.5, Luck: 1}}},
				{Text: "Protect your health", Effect: model.Effect{Stress: -6, Mood: 1, TermGradeBonus: 1, Hidden: model.Hidden{Stability: 2}}},
			},
		},
		{
			ID: "RARE_OFFER_SEED", Title: "Referral", Weight: 1, Tags: []string{"rare", TagBreakthrough}, CooldownWeeks: 32,
			Text: "An acquaintance offers to refer you to their team.",
			Gates: []Gate{{RouteIn: []model.Route{model.RouteCareer}, YearMin: 2, SocialMin: 60, ForbidAny: []string{"offerSeed"}}},
			Options: []Option{
				{Text: "Apply right away", Effect: model.Effect{Stress: 3, Energy: -4, Social: 2, Hidden: model.Hidden{CareerPower: 1.2, Luck: 1}, Flags: map[string]bool{"offerSeed": true}}},
				{Text: "Wait", Effect: model.Effect{Mood: 1, Hidden: model.Hidden{CareerPower: -0.4}}},
			},
		},
	}
}
