package console

import (
	"time"

	"github.com/libtrack/libtrack/directory"
	"github.com/libtrack/libtrack/internal/validate"
)

func (c *Console) usersMenu() error {
	for {
		c.println("\n--- Library System User Menu ---")
		c.println("Choose an option from the Sub Menu")
		c.println("1 - Add New User")
		c.println("2 - Remove a User")
		c.println("3 - Edit User Info")
		c.println("4 - Count Total Users")
		c.println("5 - Display User Info")
		c.println("6 - Return to Main Menu")

		choice, err := c.choose(1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.addUser()
		case 2:
			err = c.removeUser()
		case 3:
			err = c.editUser()
		case 4:
			c.countUsers()
		case 5:
			err = c.displayUser()
		case 6:
			c.println("Returning to Main Menu..")
			return nil
		}

		if err != nil {
			return err
		}
	}
}

func (c *Console) addUser() error {
	c.println("Please write the username for this new user. Username must contain 6-15 characters.")
	username, err := promptValidated(c, "Username: ", func(input string) (string, error) {
		name, validateErr := validate.Username(input)
		if validateErr != nil {
			return "", validateErr
		}

		if _, findErr := c.directory.Find(name); findErr == nil {
			return "", directory.ErrDuplicateUsername
		}

		return name, nil
	})
	if err != nil {
		return err
	}
	c.println("Username accepted.")

	c.println("Please write the firstname for this new user.")
	firstname, err := promptValidated(c, "Firstname: ", validate.Text)
	if err != nil {
		return err
	}
	c.println("Firstname accepted.")

	c.println("Please write the surname for this new user.")
	surname, err := promptValidated(c, "Surname: ", validate.Text)
	if err != nil {
		return err
	}
	c.println("Surname accepted.")

	c.println("Please write the house number of the new users address.")
	houseNumber, err := promptValidated(c, "House number: ", validate.HouseNumber)
	if err != nil {
		return err
	}
	c.println("House number accepted.")

	c.println("Please write the street name for this new user.")
	streetName, err := promptValidated(c, "Street name: ", validate.Text)
	if err != nil {
		return err
	}
	c.println("Street name accepted.")

	c.println("Please write a valid UK postcode for this new user. Example postcode: SW1A 1AA")
	postcode, err := promptValidated(c, "Postcode: ", validate.Postcode)
	if err != nil {
		return err
	}
	c.println("Postcode accepted.")

	c.println("Please write a valid email address for this new user. E.g. johnsmith@gmail.com")
	email, err := promptValidated(c, "Email address: ", validate.Email)
	if err != nil {
		return err
	}
	c.println("Email address accepted.")

	c.println("Please write the date of birth for the new user, including the dashes. (YYYY-MM-DD).")
	dateOfBirth, err := promptValidated(c, "User date of birth: ", func(input string) (time.Time, error) {
		return validate.DateOfBirth(input, c.clock())
	})
	if err != nil {
		return err
	}
	c.println("Date of birth accepted.")

	user := directory.User{
		Username:    username,
		Firstname:   firstname,
		Surname:     surname,
		HouseNumber: houseNumber,
		StreetName:  streetName,
		Postcode:    postcode,
		Email:       email,
		DateOfBirth: dateOfBirth,
	}

	if addErr := c.directory.Add(user); addErr != nil {
		c.printf("Adding the user failed: %v\n", addErr)
		return nil
	}

	c.printf("A new user: '%s' was successfully added to the system.\n", user.Username)

	return nil
}

// removeUser finds users by firstname, disambiguating when several share it,
// and removes the chosen one unless active loans still reference them.
func (c *Console) removeUser() error {
	if c.directory.Len() == 0 {
		c.println("There are no users to remove.")
		return nil
	}

	for {
		c.println("Type the firstname of the user you wish to remove from the system.")
		firstname, err := promptValidated(c, "Enter here: ", validate.Text)
		if err != nil {
			return err
		}

		matches := c.directory.FindByFirstname(firstname)

		if len(matches) == 0 {
			c.printf("No users were found with firstname: %s\n", firstname)

			retry, err := c.confirm("Retry search")
			if err != nil {
				return err
			}
			if !retry {
				c.println("Returning to User Menu")
				return nil
			}

			continue
		}

		if len(matches) == 1 {
			c.println("One user found.")
			return c.removeSingleUser(matches[0])
		}

		c.printf("There are %d user(s) with the firstname %s\n", len(matches), firstname)
		for i, user := range matches {
			c.printf("%d - Username: %s, Full Name: %s %s\n", i+1, user.Username, user.Firstname, user.Surname)
		}

		c.println("Please specify the user to remove by its number position. E.g. 1")
		index, err := c.choose(1, len(matches))
		if err != nil {
			return err
		}

		return c.removeSingleUser(matches[index-1])
	}
}

func (c *Console) removeSingleUser(user directory.User) error {
	if count := c.ledger.CountForUser(user.Username); count > 0 {
		c.printf("%s %s cannot be removed while renting %d book(s).\n", user.Firstname, user.Surname, count)
		c.println("Returning to User Menu")
		return nil
	}

	c.printf("User: %s %s.\n", user.Firstname, user.Surname)
	c.println("Would you like to proceed to remove this user?")

	proceed, err := c.confirm("Remove user")
	if err != nil {
		return err
	}

	if !proceed {
		c.println("Returning to User Menu")
		return nil
	}

	if removeErr := c.directory.Remove(user.Username); removeErr != nil {
		c.printf("Removing the user failed: %v\n", removeErr)
		return nil
	}

	c.printf("%s %s has been removed from the system.\n", user.Firstname, user.Surname)
	c.println("Returning to User Menu")

	return nil
}

// lookupUser prompts for a username until a user is found or the caller
// cancels. The bool result reports whether a user was selected.
func (c *Console) lookupUser() (directory.User, bool, error) {
	if c.directory.Len() == 0 {
		c.println("There are no users in the Library system.")
		return directory.User{}, false, nil
	}

	for {
		c.println("Please enter the username of the user.")
		username, err := promptValidated(c, "Enter here: ", validate.Username)
		if err != nil {
			return directory.User{}, false, err
		}

		user, findErr := c.directory.Find(username)
		if findErr == nil {
			return user, true, nil
		}

		c.printf("No user found with username: %s\n", username)

		retry, err := c.confirm("Retry search")
		if err != nil {
			return directory.User{}, false, err
		}

		if !retry {
			c.println("Returning to User Menu")
			return directory.User{}, false, nil
		}
	}
}

func (c *Console) editUser() error {
	if c.directory.Len() == 0 {
		c.println("There are no users to edit.")
		return nil
	}

	user, found, err := c.lookupUser()
	if err != nil || !found {
		return err
	}

	c.printf("Displaying editor menu for Username: %s\n", user.Username)

	for {
		c.println("\n--- Library System User Editor Menu ---")
		c.println("Choose an option from the Sub Menu")
		c.println("1 - Edit Firstname")
		c.println("2 - Edit Surname")
		c.println("3 - Edit Email Address")
		c.println("4 - Edit Date of Birth")
		c.println("5 - Exit Edit Menu")

		choice, err := c.choose(1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.println("Please write the new first name to update this user.")
			firstname, err := promptValidated(c, "Firstname: ", validate.Text)
			if err != nil {
				return err
			}
			if setErr := c.directory.SetFirstname(user.Username, firstname); setErr != nil {
				c.printf("Updating the firstname failed: %v\n", setErr)
				continue
			}
			c.printf("Firstname was updated to '%s'\n", firstname)

		case 2:
			c.println("Please write the new surname to update this user.")
			surname, err := promptValidated(c, "Surname: ", validate.Text)
			if err != nil {
				return err
			}
			if setErr := c.directory.SetSurname(user.Username, surname); setErr != nil {
				c.printf("Updating the surname failed: %v\n", setErr)
				continue
			}
			c.printf("Surname was updated to '%s'\n", surname)

		case 3:
			c.println("Please write a new email address to update this user.")
			email, err := promptValidated(c, "Email address: ", validate.Email)
			if err != nil {
				return err
			}
			if setErr := c.directory.SetEmail(user.Username, email); setErr != nil {
				c.printf("Updating the email address failed: %v\n", setErr)
				continue
			}
			c.printf("Email address was updated to '%s'\n", email)

		case 4:
			c.println("Please write the new date of birth to update this user. (YYYY-MM-DD).")
			dateOfBirth, err := promptValidated(c, "User date of birth: ", func(input string) (time.Time, error) {
				return validate.DateOfBirth(input, c.clock())
			})
			if err != nil {
				return err
			}
			if setErr := c.directory.SetDateOfBirth(user.Username, dateOfBirth); setErr != nil {
				c.printf("Updating the date of birth failed: %v\n", setErr)
				continue
			}
			c.printf("Date of birth was updated to '%s'\n", dateOfBirth.Format("2006-01-02"))

		case 5:
			c.println("Returning to User Menu")
			return nil
		}
	}
}

func (c *Console) countUsers() {
	switch c.directory.Len() {
	case 0:
		c.println("There are currently 0 users in the Library system.")
	case 1:
		c.println("There is currently 1 user in the Library system.")
	default:
		c.printf("There are currently %d users in the Library System.\n", c.directory.Len())
	}
}

func (c *Console) displayUser() error {
	user, found, err := c.lookupUser()
	if err != nil || !found {
		return err
	}

	c.printf("Displaying information for user: %s\n", user.Username)
	c.printf("Username: %s\n", user.Username)
	c.printf("Firstname: %s\n", user.Firstname)
	c.printf("Surname: %s\n", user.Surname)
	c.printf("House number: %d\n", user.HouseNumber)
	c.printf("Street name: %s\n", user.StreetName)
	c.printf("Postcode: %s\n", user.Postcode)
	c.printf("Email address: %s\n", user.Email)
	c.printf("Date of birth: %s\n", user.DateOfBirth.Format("2006-01-02"))

	return nil
}
