// Seeding tool for local development: creates a demo editor, a handful of
// authors and reviewers (all with password "password123"), and a batch of
// faker-generated papers.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/bxcodec/faker/v4"
	"github.com/joho/godotenv"

	"peer-review-api/config"
	"peer-review-api/models"
	"peer-review-api/utils"
)

const demoPassword = "password123"

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	hashed, err := utils.HashPassword(demoPassword)
	if err != nil {
		log.Fatal("Failed to hash demo password:", err)
	}

	editor := models.User{
		FirstName:   "Edna",
		LastName:    "Editor",
		Email:       "editor@example.com",
		Password:    hashed,
		UserType:    models.UserTypeEditor,
		Institution: "University Press",
	}
	if err := config.DB.Create(&editor).Error; err != nil {
		log.Fatal("Failed to create editor:", err)
	}

	var authors []models.User
	for i := 0; i < 5; i++ {
		author := models.User{
			FirstName:   faker.FirstName(),
			LastName:    faker.LastName(),
			Email:       fmt.Sprintf("author%d@example.com", i+1),
			Password:    hashed,
			UserType:    models.UserTypeAuthor,
			Institution: faker.Word() + " University",
		}
		if err := config.DB.Create(&author).Error; err != nil {
			log.Fatal("Failed to create author:", err)
		}
		authors = append(authors, author)
	}

	// Every reviewer gets two expertise tags so each field has coverage.
	for i := 0; i < 10; i++ {
		expertise := []string{
			models.ResearchFields[i%len(models.ResearchFields)],
			models.ResearchFields[(i+3)%len(models.ResearchFields)],
		}
		reviewer := models.User{
			FirstName:   faker.FirstName(),
			LastName:    faker.LastName(),
			Email:       fmt.Sprintf("reviewer%d@example.com", i+1),
			Password:    hashed,
			UserType:    models.UserTypeReviewer,
			Institution: faker.Word() + " Institute",
			Expertise:   expertise,
		}
		if err := config.DB.Create(&reviewer).Error; err != nil {
			log.Fatal("Failed to create reviewer:", err)
		}
	}

	for i := 0; i < 20; i++ {
		submitter := authors[rand.Intn(len(authors))]

		paperAuthors := []string{submitter.FirstName + " " + submitter.LastName}
		for j := 0; j < rand.Intn(3); j++ {
			paperAuthors = append(paperAuthors, faker.Name())
		}

		abstract := faker.Paragraph()
		for len(abstract) < 100 {
			abstract += " " + faker.Sentence()
		}

		paper := newDemoPaper(submitter.UserID, paperAuthors, abstract, i)
		if err := config.DB.Create(&paper).Error; err != nil {
			log.Fatal("Failed to create paper:", err)
		}
	}

	log.Println("Seed data created: 1 editor, 5 authors, 10 reviewers, 20 papers")
	log.Printf("All demo accounts use password %q", demoPassword)
}

func newDemoPaper(submitterID int, paperAuthors []string, abstract string, i int) models.Paper {
	title := strings.TrimSuffix(faker.Sentence(), ".")
	for len(title) < 5 {
		title += " " + faker.Word()
	}

	return models.Paper{
		SubmissionRef:  faker.UUIDHyphenated(),
		Title:          title,
		Authors:        paperAuthors,
		Field:          models.ResearchFields[i%len(models.ResearchFields)],
		Abstract:       abstract,
		Keywords:       []string{faker.Word(), faker.Word(), faker.Word()},
		Status:         models.PaperStatusSubmitted,
		SubmittedBy:    submitterID,
		CurrentVersion: 1,
	}
}
