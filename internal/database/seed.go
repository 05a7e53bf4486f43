package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type seedSubject struct {
	name        string
	description string
	color       string
	questions   []seedQuestion
}

type seedQuestion struct {
	text        string
	optionA     string
	optionB     string
	optionC     string
	optionD     string
	correct     string
	explanation string
	difficulty  string
	topic       string
}

var seedSubjects = []seedSubject{
	{
		name:        "Tamil",
		description: "Tamil language, literature, and grammar",
		color:       "bg-blue-500",
		questions: []seedQuestion{
			{
				text:        "Which of the following is the correct Tamil grammar rule for plural formation?",
				optionA:     "Add 'கள்' to the end of singular nouns",
				optionB:     "Add 'ங்கள்' to the end of singular nouns",
				optionC:     "Add 'கள்' or 'ங்கள்' depending on the noun",
				optionD:     "Tamil doesn't have plural forms",
				correct:     "C",
				explanation: "Tamil plural formation depends on the type of noun - animate or inanimate.",
				difficulty:  "Medium",
				topic:       "Grammar",
			},
			{
				text:        "What is the Tamil word for 'book'?",
				optionA:     "புத்தகம்",
				optionB:     "பேனா",
				optionC:     "காகிதம்",
				optionD:     "மேஜை",
				correct:     "A",
				explanation: "புத்தகம் is the correct Tamil word for book.",
				difficulty:  "Easy",
				topic:       "Vocabulary",
			},
		},
	},
	{
		name:        "Aptitude",
		description: "Quantitative aptitude and logical reasoning",
		color:       "bg-green-500",
		questions: []seedQuestion{
			{
				text:        "If a train travels 360 km in 4 hours, what is its average speed?",
				optionA:     "80 km/h",
				optionB:     "90 km/h",
				optionC:     "100 km/h",
				optionD:     "110 km/h",
				correct:     "B",
				explanation: "Average speed = distance / time = 360 / 4 = 90 km/h.",
				difficulty:  "Easy",
				topic:       "Speed and Distance",
			},
		},
	},
	{
		name:        "General Studies",
		description: "History, geography, polity, and current affairs",
		color:       "bg-purple-500",
		questions: []seedQuestion{
			{
				text:        "Which article of the Indian Constitution deals with the Right to Equality?",
				optionA:     "Article 12",
				optionB:     "Article 14",
				optionC:     "Article 19",
				optionD:     "Article 21",
				correct:     "B",
				explanation: "Article 14 guarantees equality before the law.",
				difficulty:  "Medium",
				topic:       "Polity",
			},
		},
	},
	{
		name:        "Mental Ability",
		description: "Reasoning, problem-solving, and analytical skills",
		color:       "bg-orange-500",
		questions: []seedQuestion{
			{
				text:        "Find the next number in the series: 2, 6, 12, 20, 30, ...",
				optionA:     "40",
				optionB:     "42",
				optionC:     "44",
				optionD:     "46",
				correct:     "B",
				explanation: "Differences increase by 2 each step: 4, 6, 8, 10, 12.",
				difficulty:  "Medium",
				topic:       "Number Series",
			},
		},
	},
}

// Seed populates the subjects, questions, default quizzes and sample question
// papers on first boot. It is a no-op once subjects exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM subjects").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, s := range seedSubjects {
		subjectID := uuid.New().String()
		_, err := tx.Exec(
			"INSERT INTO subjects (id, name, description, color) VALUES (?, ?, ?, ?)",
			subjectID, s.name, s.description, s.color,
		)
		if err != nil {
			return err
		}

		for _, q := range s.questions {
			_, err := tx.Exec(
				`INSERT INTO questions (id, subject_id, question_text, option_a, option_b, option_c, option_d, correct_answer, explanation, difficulty, topic)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), subjectID, q.text, q.optionA, q.optionB, q.optionC, q.optionD, q.correct, q.explanation, q.difficulty, q.topic,
			)
			if err != nil {
				return err
			}
		}

		_, err = tx.Exec(
			`INSERT INTO quizzes (id, title, description, subject_id, duration_minutes, total_questions, difficulty)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), s.name+" Practice Quiz", "Auto-generated practice quiz for "+s.name, subjectID, 30, 20, "Medium",
		)
		if err != nil {
			return err
		}
	}

	papers := []struct {
		title, year, subject, examType string
		totalQuestions                 int
	}{
		{"TNPSC Group 1 Preliminary 2023", "2023", "General Studies", "Preliminary", 200},
		{"TNPSC Group 2 Main 2022", "2022", "Tamil", "Main", 100},
		{"TNPSC Group 4 General 2023", "2023", "Aptitude", "General", 200},
	}
	for _, p := range papers {
		_, err := tx.Exec(
			`INSERT INTO question_papers (id, title, year, subject, exam_type, total_questions) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), p.title, p.year, p.subject, p.examType, p.totalQuestions,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Int("subjects", len(seedSubjects)).Msg("Seeded initial subject and question data")
	return nil
}
