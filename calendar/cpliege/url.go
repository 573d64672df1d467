package cpliege

const (
	BaseURL  = "http://www.cpliege.be"
	ClubsURL = BaseURL + "/caleclub.asp"
)
