package persistence

import (
	"time"

	"keep-app/src/domain"
)

// DemoNotes returns the first-run demo notes.
// IDは予約済みの"demo"プレフィックスを持ち、再シード判定に使われる
func DemoNotes() []domain.Note {
	now := time.Now()
	reminder := now.Add(24 * time.Hour)

	return []domain.Note{
		{
			ID:             "demo1",
			Title:          "Welcome to Keep! 👋",
			Content:        "This is your personal note-taking app. Create notes, checklists, and reminders to stay organized.",
			Color:          domain.ColorFog,
			Pinned:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
			Labels:         []string{},
			ChecklistItems: []domain.ChecklistItem{},
			Images:         []string{},
		},
		{
			ID:          "demo2",
			Title:       "🛒 Grocery List",
			Color:       domain.ColorMint,
			CreatedAt:   now,
			UpdatedAt:   now,
			Labels:      []string{},
			IsChecklist: true,
			ChecklistItems: []domain.ChecklistItem{
				{ID: "g1", Text: "Milk"},
				{ID: "g2", Text: "Eggs", Checked: true},
				{ID: "g3", Text: "Bread"},
				{ID: "g4", Text: "Butter", Checked: true},
				{ID: "g5", Text: "Fresh vegetables"},
			},
			Images: []string{},
		},
		{
			ID:             "demo3",
			Title:          "Project Ideas 💡",
			Content:        "1. Build a weather app with React\n2. Create a portfolio website\n3. Learn TypeScript\n4. Contribute to open source\n5. Build a Chrome extension",
			Color:          domain.ColorSand,
			Pinned:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
			Labels:         []string{},
			ChecklistItems: []domain.ChecklistItem{},
			Images:         []string{},
		},
		{
			ID:             "demo4",
			Title:          "Meeting Notes",
			Content:        "Discussed Q1 goals and roadmap. Key points:\n\n• Focus on user experience improvements\n• Launch new features by March\n• Weekly sync every Monday at 10 AM",
			Color:          domain.ColorStorm,
			CreatedAt:      now,
			UpdatedAt:      now,
			Reminder:       &reminder,
			Labels:         []string{},
			ChecklistItems: []domain.ChecklistItem{},
			Images:         []string{},
		},
		{
			ID:          "demo5",
			Title:       "📚 Books to Read",
			Color:       domain.ColorDusk,
			CreatedAt:   now,
			UpdatedAt:   now,
			Labels:      []string{},
			IsChecklist: true,
			ChecklistItems: []domain.ChecklistItem{
				{ID: "b1", Text: "Atomic Habits", Checked: true},
				{ID: "b2", Text: "The Pragmatic Programmer"},
				{ID: "b3", Text: "Clean Code"},
				{ID: "b4", Text: "Deep Work", Checked: true},
			},
			Images: []string{},
		},
		{
			ID:             "demo6",
			Title:          "Recipe: Pasta Carbonara 🍝",
			Content:        "Ingredients:\n- 400g spaghetti\n- 200g guanciale or pancetta\n- 4 egg yolks\n- 100g Pecorino Romano\n- Black pepper\n\nCook pasta al dente. Fry guanciale until crispy. Mix egg yolks with cheese. Combine everything off heat. Season with pepper.",
			Color:          domain.ColorPeach,
			CreatedAt:      now,
			UpdatedAt:      now,
			Labels:         []string{},
			ChecklistItems: []domain.ChecklistItem{},
			Images:         []string{},
		},
		{
			ID:          "demo7",
			Title:       "Workout Plan 💪",
			Color:       domain.ColorCoral,
			CreatedAt:   now,
			UpdatedAt:   now,
			Labels:      []string{},
			IsChecklist: true,
			ChecklistItems: []domain.ChecklistItem{
				{ID: "w1", Text: "Monday: Chest & Triceps"},
				{ID: "w2", Text: "Tuesday: Back & Biceps"},
				{ID: "w3", Text: "Wednesday: Rest"},
				{ID: "w4", Text: "Thursday: Legs"},
				{ID: "w5", Text: "Friday: Shoulders & Abs"},
			},
			Images: []string{},
		},
		{
			ID:             "demo8",
			Title:          "Travel Bucket List ✈️",
			Content:        "Places I want to visit:\n\n🗼 Tokyo, Japan - Cherry blossoms in spring\n🏔️ Swiss Alps - Skiing and hiking\n🏛️ Rome, Italy - Ancient history\n🌴 Bali, Indonesia - Beaches and temples\n🦘 Australia - Great Barrier Reef",
			Color:          domain.ColorSage,
			CreatedAt:      now,
			UpdatedAt:      now,
			Labels:         []string{},
			ChecklistItems: []domain.ChecklistItem{},
			Images:         []string{},
		},
	}
}
