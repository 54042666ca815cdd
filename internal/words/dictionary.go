package words

var Dictionary = []Entry{
	{Word: "lighthouse", Definition: "A tower with a bright lamp that guides ships at night"},
	{Word: "anchor", Definition: "A heavy object dropped to keep a ship in place"},
	{Word: "compass", Definition: "An instrument whose needle points north"},
	{Word: "glacier", Definition: "A slowly moving mass of ice"},
	{Word: "harvest", Definition: "The gathering of ripe crops"},
	{Word: "lantern", Definition: "A portable case protecting a light"},
	{Word: "orchard", Definition: "A piece of land planted with fruit trees"},
	{Word: "volcano", Definition: "A mountain that can erupt with lava"},
	{Word: "whisper", Definition: "To speak very softly"},
	{Word: "meadow", Definition: "A field of grass and wild flowers"},
	{Word: "satchel", Definition: "A bag carried on the shoulder"},
	{Word: "thimble", Definition: "A small cap worn to push a needle while sewing"},
	{Word: "quarry", Definition: "A place where stone is dug out of the ground"},
	{Word: "falcon", Definition: "A fast bird of prey with pointed wings"},
	{Word: "pebble", Definition: "A small smooth stone"},
	{Word: "ledger", Definition: "A book in which accounts are recorded"},
	{Word: "horizon", Definition: "The line where the earth seems to meet the sky"},
	{Word: "kettle", Definition: "A container used to boil water"},
	{Word: "saffron", Definition: "An expensive spice made from crocus flowers"},
	{Word: "tundra", Definition: "A vast treeless arctic plain"},
	{Word: "bramble", Definition: "A prickly shrub, often bearing berries"},
	{Word: "citadel", Definition: "A fortress protecting a city"},
	{Word: "mosaic", Definition: "A picture made from small pieces of stone or glass"},
	{Word: "nomad", Definition: "A person with no permanent home who moves around"},
	{Word: "riddle", Definition: "A puzzling question with a clever answer"},
	{Word: "sextant", Definition: "An instrument for measuring angles to navigate by the stars"},
	{Word: "timber", Definition: "Wood prepared for building"},
	{Word: "vessel", Definition: "A ship or a large boat"},
	{Word: "wick", Definition: "The string in a candle that burns"},
	{Word: "zephyr", Definition: "A soft gentle breeze"},
}
