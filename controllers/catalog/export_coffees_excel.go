package catalogController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Oleksandr-DUIKT/coffee-bot-telebot-pd-41/store"
)

func ExportCoffeesToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		coffees, err := s.ListCoffees()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coffees"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Coffees")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Name", "Description", "PictureURL", "Price", "CreatedAt", "UpdatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, coffee := range coffees {
			row := sheet.AddRow()
			row.AddCell().SetValue(coffee.ID)
			row.AddCell().SetValue(coffee.Name)
			row.AddCell().SetValue(coffee.Description)
			row.AddCell().SetValue(coffee.PictureURL)
			row.AddCell().SetValue(coffee.Price)
			row.AddCell().SetValue(coffee.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(coffee.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=coffees.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
