package main

import (
	"flag"
	"fmt"
	"log"

	"uvtab-emis/app/config"
	"uvtab-emis/app/database"
	"uvtab-emis/app/models"
	"uvtab-emis/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new account")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "staff", "account role: admin, staff or support")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("Usage: add_user -email ... -password ... -first-name ... -last-name ... [-role staff]")
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.UserRole(*role),
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user:", err)
	}

	fmt.Printf("User created successfully: %s %s (%s), role %s\n",
		user.FirstName, user.LastName, user.Email, user.Role)
}
