package database

import (
	"toolhub/internal/http-api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed inserts the sample catalog when the tools table is empty. Safe to
// call on every startup.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Tool{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tools := sampleTools()
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tools).Error
	})
	if err != nil {
		return err
	}

	log.Info("seeded sample tools", zap.Int("count", len(tools)))
	return nil
}

func sampleTools() []models.Tool {
	return []models.Tool{
		{
			Name:              "Nmap",
			Description:       "Network exploration tool and security scanner",
			Category:          "Network",
			Language:          strp("C++"),
			GithubURL:         strp("https://github.com/nmap/nmap"),
			WebsiteURL:        strp("https://nmap.org"),
			Tags:              strp("network,scanner,reconnaissance"),
			Author:            strp("Gordon Lyon"),
			InstallationGuide: strp("Install via package manager: apt-get install nmap or brew install nmap"),
			UsageExample:      strp("nmap -sS -O target.com"),
		},
		{
			Name:              "Metasploit Framework",
			Description:       "Penetration testing framework with exploit development",
			Category:          "Exploitation",
			Language:          strp("Ruby"),
			GithubURL:         strp("https://github.com/rapid7/metasploit-framework"),
			WebsiteURL:        strp("https://www.metasploit.com"),
			Tags:              strp("exploitation,framework,penetration-testing"),
			Author:            strp("Rapid7"),
			InstallationGuide: strp("git clone https://github.com/rapid7/metasploit-framework.git"),
			UsageExample:      strp("msfconsole"),
		},
		{
			Name:              "Burp Suite",
			Description:       "Web application security testing platform",
			Category:          "Web",
			Language:          strp("Java"),
			WebsiteURL:        strp("https://portswigger.net/burp"),
			Tags:              strp("web,proxy,security-testing"),
			Author:            strp("PortSwigger"),
			InstallationGuide: strp("Download from https://portswigger.net/burp/communitydownload"),
		},
		{
			Name:              "Wireshark",
			Description:       "Network protocol analyzer",
			Category:          "Network",
			Language:          strp("C"),
			GithubURL:         strp("https://github.com/wireshark/wireshark"),
			WebsiteURL:        strp("https://www.wireshark.org"),
			Tags:              strp("network,packet-analysis,protocol"),
			Author:            strp("Wireshark Foundation"),
			InstallationGuide: strp("Install via package manager: apt-get install wireshark"),
		},
		{
			Name:              "John the Ripper",
			Description:       "Fast password cracker",
			Category:          "Password",
			Language:          strp("C"),
			GithubURL:         strp("https://github.com/openwall/john"),
			WebsiteURL:        strp("https://www.openwall.com/john"),
			Tags:              strp("password,cracking,security"),
			Author:            strp("Openwall"),
			InstallationGuide: strp("git clone https://github.com/openwall/john.git"),
		},
	}
}

func strp(s string) *string {
	return &s
}
