/*
Package sheets is a command line helper for Google Sheets spreadsheets.

sheets-helper converts between spreadsheet column labels and column numbers, and wraps the
Google Sheets API for the everyday spreadsheet chores:

  - authorise, to authorise application access to Google Sheets
  - create, to create a new spreadsheet
  - get, to download a worksheet range as a TSV or xlsx file
  - put, to upload a TSV file to a worksheet range
  - append, to append rows to a worksheet
  - update, to update a single cell or a range
  - colour, to set the background colour of a range
  - duplicate, to copy a worksheet
  - find, to find the cell holding a value
  - worksheets, to list the worksheets in a spreadsheet
  - column, to convert a column label to a column number (or back)
*/
package sheets
