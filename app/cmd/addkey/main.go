package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
	"github.com/phanumatwang/finance-dashboard/app/payroll"
	"github.com/phanumatwang/finance-dashboard/app/routes/auth"
)

func main() {
	name := flag.String("name", "", "employee or admin name")
	role := flag.String("role", models.RoleUser, "user, admin or superadmin")
	key := flag.String("key", "", "plaintext access key to hand out")
	wage := flag.Float64("wage", 0, "daily wage in baht (workers only)")
	flag.Parse()

	if *name == "" || *key == "" {
		fmt.Println("Usage: addkey -name <name> -key <key> [-role user|admin|superadmin] [-wage 500]")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	hash, err := auth.HashKey(*key)
	if err != nil {
		fmt.Printf("Error hashing key: %v\n", err)
		os.Exit(1)
	}

	accessKey := &models.AccessKey{
		KeyHash:        hash,
		Name:           *name,
		Role:           *role,
		DailyWageCents: payroll.ToCents(*wage),
	}
	if err := database.CreateAccessKey(db, accessKey); err != nil {
		fmt.Printf("Error creating access key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Access key created for %s (%s), daily wage %s\n",
		accessKey.Name, accessKey.Role, payroll.FormatCents(accessKey.DailyWageCents))
}
